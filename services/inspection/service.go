package inspection

import (
	"fmt"
	"time"

	feedRepo "nestora/database/repository/feed"
	inspectionRepo "nestora/database/repository/inspection"
	propertyRepo "nestora/database/repository/property"
	"nestora/models"
	"nestora/services/schedule"
	"nestora/services/tasks"
	"nestora/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// WeeklyScheduleResult is the renderer-ready grid for one agent's week.
type WeeklyScheduleResult struct {
	Grid      *schedule.Grid      `json:"grid"`
	Conflicts []schedule.Conflict `json:"conflicts,omitempty"`
	TimeRows  []string            `json:"timeRows"`
}

// InspectionService defines the inspection booking flows.
type InspectionService interface {
	// Book schedules a new inspection and queues its reminder.
	Book(inspection models.Inspection) (*models.Inspection, error)
	// Cancel moves an inspection to cancelled.
	Cancel(id string) error
	// WeeklySchedule lays out an agent's scheduled inspections into the
	// weekly time grid.
	WeeklySchedule(agentID string) (*WeeklyScheduleResult, error)
}

// DefaultInspectionService implements InspectionService.
type DefaultInspectionService struct {
	Repo       inspectionRepo.InspectionRepository
	Properties propertyRepo.PropertyRepository
	Feed       feedRepo.FeedRepository
	Reminders  *tasks.ReminderScheduler
	Table      *schedule.TimeTable
	Days       []int
}

// Book schedules a new inspection and queues its reminder.
func (s *DefaultInspectionService) Book(inspection models.Inspection) (*models.Inspection, error) {
	logger := utils.GetLogger()

	property, err := s.Properties.GetByID(inspection.PropertyID)
	if err != nil {
		logger.Error("Book: failed to fetch property", zap.Error(err))
		return nil, fmt.Errorf("booking failed, please try again")
	}
	if property == nil {
		return nil, fmt.Errorf("property not found")
	}

	startIdx, ok := s.Table.IndexOf(inspection.StartTime)
	if !ok {
		return nil, fmt.Errorf("unknown start time %q", inspection.StartTime)
	}
	endIdx, ok := s.Table.IndexOf(inspection.EndTime)
	if !ok {
		return nil, fmt.Errorf("unknown end time %q", inspection.EndTime)
	}
	if endIdx < startIdx {
		return nil, fmt.Errorf("inspection cannot end before it starts")
	}
	if !s.validDay(inspection.Day) {
		return nil, fmt.Errorf("day %d is outside the schedule grid", inspection.Day)
	}
	if _, err := time.Parse("2006-01-02", inspection.Date); err != nil {
		return nil, fmt.Errorf("date must be in YYYY-MM-DD format")
	}

	inspection.ID = uuid.New().String()
	inspection.AgentID = property.AgentID
	inspection.Status = models.InspectionScheduled

	if err := s.Repo.Create(&inspection); err != nil {
		logger.Error("Book: failed to create inspection", zap.Error(err))
		return nil, fmt.Errorf("booking failed, please try again")
	}

	s.scheduleReminder(inspection, property.Title)

	post := models.FeedPost{
		ID:        uuid.New().String(),
		AgentID:   inspection.AgentID,
		Kind:      models.FeedInspectionBooked,
		Title:     fmt.Sprintf("Inspection booked at %s", property.Title),
		Body:      fmt.Sprintf("%s, %s to %s", inspection.Date, inspection.StartTime, inspection.EndTime),
		RefID:     inspection.ID,
		CreatedAt: time.Now(),
	}
	if err := s.Feed.Create(&post); err != nil {
		logger.Warn("Book: failed to publish feed post", zap.Error(err))
	}

	return &inspection, nil
}

func (s *DefaultInspectionService) validDay(day int) bool {
	for _, d := range s.Days {
		if d == day {
			return true
		}
	}
	return false
}

// scheduleReminder enqueues a reminder one hour before the inspection starts.
// Failures are logged; the booking itself already succeeded.
func (s *DefaultInspectionService) scheduleReminder(inspection models.Inspection, propertyTitle string) {
	if s.Reminders == nil {
		return
	}
	logger := utils.GetLogger()

	day, err := time.ParseInLocation("2006-01-02", inspection.Date, time.Local)
	if err != nil {
		logger.Warn("scheduleReminder: unparseable date", zap.String("date", inspection.Date))
		return
	}
	start, err := time.Parse("3:04 pm", inspection.StartTime)
	if err != nil {
		logger.Warn("scheduleReminder: unparseable start time", zap.String("start", inspection.StartTime))
		return
	}
	fireAt := day.Add(time.Duration(start.Hour())*time.Hour + time.Duration(start.Minute())*time.Minute).Add(-time.Hour)

	payload := models.ReminderPayload{
		ReminderID:   uuid.New().String(),
		AccountID:    inspection.AgentID,
		InspectionID: inspection.ID,
		Title:        "Upcoming inspection",
		Body:         fmt.Sprintf("%s at %s", propertyTitle, inspection.StartTime),
		FireDate:     fireAt.Format(time.RFC3339),
	}
	if err := s.Reminders.Schedule(payload, fireAt); err != nil {
		logger.Warn("scheduleReminder: failed to enqueue reminder", zap.Error(err))
	}
}

// Cancel moves an inspection to cancelled.
func (s *DefaultInspectionService) Cancel(id string) error {
	if err := s.Repo.UpdateStatus(id, models.InspectionCancelled); err != nil {
		utils.GetLogger().Error("Cancel: failed to update inspection", zap.Error(err))
		return fmt.Errorf("failed to cancel inspection, please try again")
	}
	return nil
}

// WeeklySchedule lays out an agent's scheduled inspections into the weekly
// time grid. Inspections with unresolvable labels surface as conflicts, not
// errors, so a single bad record never blanks the whole schedule.
func (s *DefaultInspectionService) WeeklySchedule(agentID string) (*WeeklyScheduleResult, error) {
	inspections, err := s.Repo.GetByAgent(agentID, models.InspectionScheduled)
	if err != nil {
		utils.GetLogger().Error("WeeklySchedule: failed to fetch inspections", zap.Error(err))
		return nil, fmt.Errorf("failed to load schedule, please try again")
	}

	grid, conflicts, err := schedule.Layout(s.gridBookings(inspections), s.Table, s.Days)
	if err != nil {
		return nil, err
	}

	return &WeeklyScheduleResult{
		Grid:      grid,
		Conflicts: conflicts,
		TimeRows:  s.Table.Labels(),
	}, nil
}

// gridBookings maps stored inspections onto layout input. Labels that no
// longer resolve carry a negative slot for the layout to report.
func (s *DefaultInspectionService) gridBookings(inspections []models.Inspection) []schedule.Booking {
	bookings := make([]schedule.Booking, 0, len(inspections))
	for _, insp := range inspections {
		startIdx, ok := s.Table.IndexOf(insp.StartTime)
		if !ok {
			startIdx = -1
		}
		endIdx, ok := s.Table.IndexOf(insp.EndTime)
		if !ok {
			endIdx = -1
		}
		bookings = append(bookings, schedule.Booking{
			ID:        insp.ID,
			Day:       insp.Day,
			StartSlot: startIdx,
			EndSlot:   endIdx,
			Title:     insp.Notes,
			Subtitle:  insp.PropertyID,
			Category:  insp.Category,
		})
	}
	return bookings
}
