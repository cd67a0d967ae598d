package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sysu-ecnc-dev/mueen/backend/internal/config"
	"github.com/sysu-ecnc-dev/mueen/backend/internal/repository"
	"github.com/sysu-ecnc-dev/mueen/backend/internal/seed"
	"github.com/sysu-ecnc-dev/mueen/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var month string
	var userID int64

	flag.IntVar(&op, "op", 0, "要执行的操作 (1: 插入随机用户, 2: 生成随机员工名单, 3: 生成某月的随机请假排班, 4: 插入随机任务, 5: 插入随机便签)")
	flag.IntVar(&n, "n", 5, "要插入的记录数量")
	flag.StringVar(&month, "month", seed.CurrentMonthKey(), "生成请假排班的月份 (YYYY-MM)")
	flag.Int64Var(&userID, "user-id", 0, "任务或便签所属的用户 ID")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// 读取配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法读取配置文件", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 创建数据库连接池
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("无法创建数据库连接池", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open 只是创建数据库连接池对象，并不会立即连接到数据库，因此需要显式地 ping 一下
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("无法连接到数据库", "error", err)
		return
	}

	// 连接 redis，请假排班的数据都存在 redis 中
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       0,
	})

	// 创建 repository
	repo := repository.NewRepository(cfg, dbpool, rdb)

	// 执行操作
	switch op {
	case 0:
		slog.Error("未指定操作")
	case 1:
		if n <= 0 {
			slog.Error("请输入合法的用户数量")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				user, err := utils.GenerateRandomUser(cfg.Seed.User.Password, cfg.Email.UserDomain)
				if err != nil {
					slog.Error("无法生成随机用户", slog.String("error", err.Error()))
					continue
				}

				if err := repo.CreateUser(user); err != nil {
					slog.Error("无法插入用户", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("插入用户成功", slog.Int("count", n-cnt))
		}
	case 2:
		if n <= 0 {
			slog.Error("请输入合法的员工数量")
		} else {
			employees, err := seed.SeedEmployees(repo, n)
			if err != nil {
				slog.Error("无法生成员工名单", slog.String("error", err.Error()))
				return
			}

			slog.Info("生成员工名单成功", slog.Int("count", len(employees)))
		}
	case 3:
		created, err := seed.SeedMonthVacations(repo, month)
		if err != nil {
			slog.Error("无法生成请假排班", slog.String("error", err.Error()))
			return
		}

		slog.Info("生成请假排班成功", slog.String("month", month), slog.Int("slots", created))
	case 4:
		if userID <= 0 {
			slog.Error("请输入合法的用户 ID")
			return
		}

		cnt := 0
		for i := 0; i < n; i++ {
			task := utils.GenerateRandomTask(userID)
			if err := repo.CreateTask(task); err != nil {
				slog.Error("无法插入任务", slog.String("error", err.Error()))
				continue
			}
			cnt++
		}

		slog.Info("插入任务成功", slog.Int("count", cnt))
	case 5:
		if userID <= 0 {
			slog.Error("请输入合法的用户 ID")
			return
		}

		cnt := 0
		for i := 0; i < n; i++ {
			note := utils.GenerateRandomNote(userID)
			if err := repo.CreateNote(note); err != nil {
				slog.Error("无法插入便签", slog.String("error", err.Error()))
				continue
			}
			cnt++
		}

		slog.Info("插入便签成功", slog.Int("count", cnt))
	default:
		slog.Error("指定的操作非法")
	}
}
