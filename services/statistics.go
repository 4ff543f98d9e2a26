package services

import (
	"time"

	"peels-backend/models"

	"gorm.io/gorm"
)

type StatisticsService struct {
	DB *gorm.DB
}

func NewStatisticsService(db *gorm.DB) *StatisticsService {
	return &StatisticsService{DB: db}
}

// EntriesPerMonth returns a 12-slot histogram of the user's entries for the
// given year, indexed January..December.
func (s *StatisticsService) EntriesPerMonth(userID string, year int) ([12]int64, error) {
	var counts [12]int64
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	var entries []models.Entry
	if err := s.DB.Select("entry_date").
		Where("user_id = ? AND entry_date >= ? AND entry_date < ?", userID, start, end).
		Find(&entries).Error; err != nil {
		return counts, err
	}
	for _, e := range entries {
		counts[int(e.EntryDate.Month())-1]++
	}
	return counts, nil
}

// MoodDistribution counts entries per mood label.
func (s *StatisticsService) MoodDistribution(userID string) (map[string]int64, error) {
	type row struct {
		Mood  string
		Count int64
	}
	var rows []row
	err := s.DB.Model(&models.Entry{}).
		Select("mood, COUNT(*) as count").
		Where("user_id = ? AND mood != ''", userID).
		Group("mood").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	dist := make(map[string]int64, len(rows))
	for _, r := range rows {
		dist[r.Mood] = r.Count
	}
	return dist, nil
}

// XPHistory returns the user's ledger entries for the last N days, oldest
// first, for the XP-over-time graph.
func (s *StatisticsService) XPHistory(userID string, days int) ([]models.XPLog, error) {
	since := time.Now().AddDate(0, 0, -days)
	var logs []models.XPLog
	err := s.DB.Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at ASC").
		Find(&logs).Error
	return logs, err
}

// LeaderboardRow is one row of the monthly XP leaderboard.
type LeaderboardRow struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	XPGained int64  `json:"xp_gained"`
}

// MonthlyLeaderboard sums the XP ledger for the calendar month containing
// now, top gainers first. This is the time-windowed consumer the ledger
// exists for.
func (s *StatisticsService) MonthlyLeaderboard(now time.Time, limit int) ([]LeaderboardRow, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	var rows []LeaderboardRow
	err := s.DB.Model(&models.XPLog{}).
		Select("xp_logs.user_id, users.username, SUM(xp_logs.xp_change) as xp_gained").
		Joins("INNER JOIN users ON users.id = xp_logs.user_id").
		Where("xp_logs.created_at >= ? AND xp_logs.created_at < ?", monthStart, monthEnd).
		Group("xp_logs.user_id, users.username").
		Order("xp_gained DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// LongestEntryStreak recomputes the longest run of consecutive entry days
// from the full entry history. Unlike the incremental counters on the user
// record this walks every distinct entry date, so it also reflects streaks
// that ended long ago.
func (s *StatisticsService) LongestEntryStreak(userID string) (int, error) {
	var entries []models.Entry
	if err := s.DB.Select("entry_date").
		Where("user_id = ?", userID).
		Order("entry_date ASC").
		Find(&entries).Error; err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		return 0, nil
	}

	longest, current := 1, 1
	prev := dateOnly(entries[0].EntryDate)
	for _, e := range entries[1:] {
		day := dateOnly(e.EntryDate)
		switch day.Sub(prev) {
		case 0:
			continue // same day, streak unchanged
		case 24 * time.Hour:
			current++
		default:
			current = 1
		}
		if current > longest {
			longest = current
		}
		prev = day
	}
	return longest, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
