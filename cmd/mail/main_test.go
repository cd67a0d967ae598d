package main

import (
	"bytes"
	"encoding/json"
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/mueen/backend/internal/domain"
)

// 还原 worker 的处理路径：邮件消息经过一轮 JSON 序列化后，
// Data 会变成按 JSON 字段名取值的 map[string]any，
// 模板里引用 Go 结构体的字段名会渲染出空白
func renderMailTemplate(t *testing.T, file string, msg domain.MailMessage) string {
	t.Helper()

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	decoded := domain.MailMessage{}
	require.NoError(t, json.Unmarshal(body, &decoded))

	tmpl, err := template.ParseFiles(file)
	require.NoError(t, err)

	buf := bytes.Buffer{}
	require.NoError(t, tmpl.Execute(&buf, decoded.Data))

	return buf.String()
}

func TestNewAccountEmailTemplate(t *testing.T) {
	t.Parallel()

	output := renderMailTemplate(t, "../../templates/new_account_email.html", domain.MailMessage{
		Type: "create_user",
		To:   "wangwei1@example.com",
		Data: domain.CreateUserMailData{
			FullName: "王伟",
			Username: "wangwei1",
			Password: "s3cret!pass",
		},
	})

	assert.Contains(t, output, "王伟")
	assert.Contains(t, output, "wangwei1")
	assert.Contains(t, output, "s3cret!pass")
}

func TestResetPasswordOTPEmailTemplate(t *testing.T) {
	t.Parallel()

	output := renderMailTemplate(t, "../../templates/reset_password_otp_email.html", domain.MailMessage{
		Type: "reset_password",
		To:   "wangwei1@example.com",
		Data: domain.ResetPasswordMailData{
			FullName:   "王伟",
			OTP:        "123456",
			Expiration: 15,
		},
	})

	assert.Contains(t, output, "王伟")
	assert.Contains(t, output, "123456")
	assert.Contains(t, output, "15 分钟")
}

func TestChangeEmailEmailTemplate(t *testing.T) {
	t.Parallel()

	output := renderMailTemplate(t, "../../templates/change_email_email.html", domain.MailMessage{
		Type: "change_email",
		To:   "new@example.com",
		Data: domain.ChangeEmailMailData{
			FullName:   "李芳",
			OTP:        "654321",
			Expiration: 15,
		},
	})

	assert.Contains(t, output, "李芳")
	assert.Contains(t, output, "654321")
	assert.Contains(t, output, "15 分钟")
}

func TestNotificationEmailTemplate(t *testing.T) {
	t.Parallel()

	output := renderMailTemplate(t, "../../templates/notification_email.html", domain.MailMessage{
		Type: "notification",
		To:   "wangwei1@example.com",
		Data: domain.NotificationMailData{
			FullName: "王伟",
			Title:    "排班已更新",
			Content:  "六月的请假安排有变动",
			Link:     "https://mueen.example.com/vacations",
		},
	})

	assert.Contains(t, output, "王伟")
	assert.Contains(t, output, "排班已更新")
	assert.Contains(t, output, "六月的请假安排有变动")
	assert.Contains(t, output, "https://mueen.example.com/vacations")
}

func TestNotificationEmailTemplate_WithoutOptionalFields(t *testing.T) {
	t.Parallel()

	output := renderMailTemplate(t, "../../templates/notification_email.html", domain.MailMessage{
		Type: "notification",
		To:   "wangwei1@example.com",
		Data: domain.NotificationMailData{
			FullName: "王伟",
			Title:    "仅标题通知",
		},
	})

	assert.Contains(t, output, "仅标题通知")
	assert.NotContains(t, output, "查看详情")
}
