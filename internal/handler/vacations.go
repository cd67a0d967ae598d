package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sysu-ecnc-dev/mueen/backend/internal/domain"
	"github.com/sysu-ecnc-dev/mueen/backend/internal/leave"
	"github.com/sysu-ecnc-dev/mueen/backend/internal/utils"
)

// loadPlanner 把 redis 中的三条记录整体读出来组装成 Planner，
// 修改后必须通过 savePlanner 整体写回
func (h *Handler) loadPlanner() (*leave.Planner, error) {
	employees, err := h.repository.GetEmployees()
	if err != nil {
		return nil, err
	}

	rosters, err := h.repository.GetMonthlyRosters()
	if err != nil {
		return nil, err
	}

	vacations, err := h.repository.GetVacations()
	if err != nil {
		return nil, err
	}

	return leave.NewPlanner(employees, rosters, vacations), nil
}

func (h *Handler) savePlanner(p *leave.Planner) error {
	if err := h.repository.SetMonthlyRosters(p.Rosters()); err != nil {
		return err
	}
	return h.repository.SetVacations(p.Vacations())
}

func (h *Handler) GetEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.repository.GetEmployees()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取员工名单成功", employees)
}

// UpdateEmployees 整体替换全局员工名单，已有月份的快照不受影响
func (h *Handler) UpdateEmployees(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Employees []struct {
			Name                  string `json:"name"`
			MonthlyLeaveAllowance int    `json:"monthlyLeaveAllowance"`
		} `json:"employees" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	employees := make([]domain.Employee, 0, len(req.Employees))
	for _, e := range req.Employees {
		employees = append(employees, domain.Employee{
			Name:                  e.Name,
			MonthlyLeaveAllowance: e.MonthlyLeaveAllowance,
		})
	}

	// 指派处按修剪后的姓名比较，这里不修剪的话带空白的姓名会永远无法被指派
	employees = utils.NormalizeRoster(employees)

	if err := utils.ValidateRoster(employees); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if err := h.repository.SetEmployees(employees); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "更新员工名单成功", employees)
}

func (h *Handler) GetMonthSchedule(w http.ResponseWriter, r *http.Request) {
	monthKey := chi.URLParam(r, "month")
	anchor, err := domain.ParseMonthKey(monthKey)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	p, err := h.loadPlanner()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	grid := leave.BuildMonthGrid(anchor)
	roster := p.RosterForMonth(monthKey)
	counts := p.Counts(monthKey)

	days := make(map[string][]domain.LeaveSlot, len(grid.Days))
	for _, day := range grid.Days {
		days[domain.DateKeyOf(day)] = p.Slots(domain.DateKeyOf(day))
	}

	// 第一次浏览该月会生成员工快照，要把它持久化下来
	if err := h.repository.SetMonthlyRosters(p.Rosters()); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	data := struct {
		Grid          *leave.MonthGrid              `json:"grid"`
		Employees     []domain.Employee             `json:"employees"`
		Counts        []int                         `json:"counts"`
		Days          map[string][]domain.LeaveSlot `json:"days"`
		CanAddSlot    bool                          `json:"canAddSlot"`
		PreviousMonth string                        `json:"previousMonth"`
		NextMonth     string                        `json:"nextMonth"`
	}{
		Grid:          grid,
		Employees:     roster,
		Counts:        counts,
		Days:          days,
		CanAddSlot:    p.HasRemainingAllowance(monthKey),
		PreviousMonth: domain.MonthKeyOf(leave.PreviousMonth(anchor)),
		NextMonth:     domain.MonthKeyOf(leave.NextMonth(anchor)),
	}

	h.successResponse(w, r, "获取月度排班成功", data)
}

func (h *Handler) UpdateMonthEmployee(w http.ResponseWriter, r *http.Request) {
	monthKey := chi.URLParam(r, "month")

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		h.errorResponse(w, r, "员工序号无效")
		return
	}

	var req struct {
		Name                  *string `json:"name"`
		MonthlyLeaveAllowance *int    `json:"monthlyLeaveAllowance"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	p, err := h.loadPlanner()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := p.UpdateEmployee(monthKey, index, req.Name, req.MonthlyLeaveAllowance); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if err := h.savePlanner(p); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "更新员工信息成功", p.RosterForMonth(monthKey))
}

func (h *Handler) AddLeaveSlot(w http.ResponseWriter, r *http.Request) {
	dateKey := chi.URLParam(r, "date")

	p, err := h.loadPlanner()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	slot, err := p.AddSlot(dateKey)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if err := h.savePlanner(p); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "新增请假档位成功", slot)
}

func (h *Handler) AssignLeaveSlot(w http.ResponseWriter, r *http.Request) {
	dateKey := chi.URLParam(r, "date")
	slotID := chi.URLParam(r, "slotID")

	var req struct {
		Text string `json:"text"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	p, err := h.loadPlanner()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := p.AssignSlot(dateKey, slotID, req.Text); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if err := h.savePlanner(p); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "指派请假档位成功", p.Slots(dateKey))
}

func (h *Handler) DeleteLeaveSlot(w http.ResponseWriter, r *http.Request) {
	dateKey := chi.URLParam(r, "date")
	slotID := chi.URLParam(r, "slotID")

	p, err := h.loadPlanner()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// 删除不存在的档位也是成功
	p.DeleteSlot(dateKey, slotID)

	if err := h.savePlanner(p); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除请假档位成功", nil)
}

func (h *Handler) MoveLeaveSlot(w http.ResponseWriter, r *http.Request) {
	srcDate := chi.URLParam(r, "date")
	slotID := chi.URLParam(r, "slotID")

	var req struct {
		To string `json:"to" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	p, err := h.loadPlanner()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := p.MoveSlot(srcDate, req.To, slotID); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if err := h.savePlanner(p); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "移动请假档位成功", p.Slots(req.To))
}
