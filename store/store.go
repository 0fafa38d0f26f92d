// Package store is the persistence side of the invite service. Store is what
// the service depends on; Gorm implements it on MySQL or SQLite.
package store

import (
	"context"
	"errors"
	"sort"
	"strings"

	"sevgi/lifecycle"
	"sevgi/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNotFound = errors.New("record not found")
	// ErrStale means the invite left the expected status before the update
	ErrStale = errors.New("invite status changed concurrently")
)

type Store interface {
	CreateInvite(ctx context.Context, invite *models.Invite) error
	InviteByToken(ctx context.Context, token string) (*models.Invite, error)
	InviteByID(ctx context.Context, id uint64) (*models.Invite, error)
	// LockInvite reads the latest committed invite and locks its row until
	// the surrounding transaction ends
	LockInvite(ctx context.Context, token string) (*models.Invite, error)
	TokenExists(ctx context.Context, token string) (bool, error)
	// UpdateInvite applies changes only while the invite is still in status from
	UpdateInvite(ctx context.Context, id uint64, from lifecycle.Status, changes map[string]interface{}) error
	DeleteInvite(ctx context.Context, id uint64) error

	SaveAnswers(ctx context.Context, inviteID uint64, choices map[uint64]models.Choice) (int, error)
	Answers(ctx context.Context, inviteID uint64) ([]models.Answer, error)

	SampleActiveQuestions(ctx context.Context, n int) ([]models.Question, error)
	ActiveQuestions(ctx context.Context) ([]models.Question, error)
	SeedQuestions(ctx context.Context, questions []models.Question) (int, error)
	SetQuestionActive(ctx context.Context, id uint64, active bool) error

	CreatePayment(ctx context.Context, payment *models.Payment) error
	UpdatePayment(ctx context.Context, payment *models.Payment) error

	// Transaction runs fn against a Store bound to one database transaction
	Transaction(ctx context.Context, fn func(Store) error) error
}

type Gorm struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func (s *Gorm) Transaction(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Gorm{db: tx})
	})
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *Gorm) CreateInvite(ctx context.Context, invite *models.Invite) error {
	return s.db.WithContext(ctx).Create(invite).Error
}

func (s *Gorm) InviteByToken(ctx context.Context, token string) (*models.Invite, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrNotFound
	}
	var invite models.Invite
	if err := s.db.WithContext(ctx).Where("token = ?", token).First(&invite).Error; err != nil {
		return nil, notFound(err)
	}
	return &invite, nil
}

func (s *Gorm) InviteByID(ctx context.Context, id uint64) (*models.Invite, error) {
	var invite models.Invite
	if err := s.db.WithContext(ctx).First(&invite, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &invite, nil
}

func (s *Gorm) LockInvite(ctx context.Context, token string) (*models.Invite, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrNotFound
	}
	var invite models.Invite
	err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("token = ?", token).
		First(&invite).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &invite, nil
}

func (s *Gorm) TokenExists(ctx context.Context, token string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Invite{}).Where("token = ?", token).Count(&count).Error
	return count > 0, err
}

func (s *Gorm) UpdateInvite(ctx context.Context, id uint64, from lifecycle.Status, changes map[string]interface{}) error {
	result := s.db.WithContext(ctx).
		Model(&models.Invite{}).
		Where("id = ? AND status = ?", id, from).
		Updates(changes)
	if result.Error != nil {
		return result.Error
	}
	// rows matched, not rows changed: MySQL connections use clientFoundRows
	if result.RowsAffected == 0 {
		return ErrStale
	}
	return nil
}

// DeleteInvite removes the invite with everything it owns. Cascades are done
// explicitly, SQLite may run without foreign keys.
func (s *Gorm) DeleteInvite(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invite_id = ?", id).Delete(&models.Answer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("invite_id = ?", id).Delete(&models.Payment{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Invite{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// SaveAnswers upserts one row per (invite, question). Choices for questions
// that do not exist are skipped. Returns how many rows were written.
func (s *Gorm) SaveAnswers(ctx context.Context, inviteID uint64, choices map[uint64]models.Choice) (int, error) {
	if len(choices) == 0 {
		return 0, nil
	}
	ids := make([]uint64, 0, len(choices))
	for id := range choices {
		ids = append(ids, id)
	}
	var known []uint64
	err := s.db.WithContext(ctx).Model(&models.Question{}).Where("id IN ?", ids).Pluck("id", &known).Error
	if err != nil {
		return 0, err
	}
	if len(known) == 0 {
		return 0, nil
	}
	// stable insert order, answers are read back by id
	sort.Slice(known, func(i, j int) bool { return known[i] < known[j] })
	answers := make([]models.Answer, 0, len(known))
	for _, id := range known {
		answers = append(answers, models.Answer{
			InviteID:   inviteID,
			QuestionID: id,
			Choice:     choices[id],
		})
	}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "invite_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"choice", "updated_at"}),
	}).Create(&answers).Error
	if err != nil {
		return 0, err
	}
	return len(answers), nil
}

func (s *Gorm) Answers(ctx context.Context, inviteID uint64) ([]models.Answer, error) {
	answers := []models.Answer{}
	err := s.db.WithContext(ctx).
		Preload("Question").
		Where("invite_id = ?", inviteID).
		Order("id ASC").
		Find(&answers).Error
	return answers, err
}

func (s *Gorm) randomOrder() string {
	if s.db.Dialector.Name() == "mysql" {
		return "RAND()"
	}
	return "RANDOM()"
}

// SampleActiveQuestions lets the database pick n random active questions.
// Every call may return a different sample.
func (s *Gorm) SampleActiveQuestions(ctx context.Context, n int) ([]models.Question, error) {
	result := []models.Question{}
	if n <= 0 {
		return result, nil
	}
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order(s.randomOrder()).
		Limit(n).
		Find(&result).Error
	return result, err
}

func (s *Gorm) ActiveQuestions(ctx context.Context) ([]models.Question, error) {
	result := []models.Question{}
	err := s.db.WithContext(ctx).Where("is_active = ?", true).Order("id ASC").Find(&result).Error
	return result, err
}

// SeedQuestions inserts the given bank only when there are no questions yet
func (s *Gorm) SeedQuestions(ctx context.Context, questions []models.Question) (int, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Question{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 || len(questions) == 0 {
		return 0, nil
	}
	if err := s.db.WithContext(ctx).Create(&questions).Error; err != nil {
		return 0, err
	}
	return len(questions), nil
}

// SetQuestionActive retires (or brings back) a question. Answers keep
// pointing to it either way.
func (s *Gorm) SetQuestionActive(ctx context.Context, id uint64, active bool) error {
	var question models.Question
	if err := s.db.WithContext(ctx).Select("id").First(&question, id).Error; err != nil {
		return notFound(err)
	}
	return s.db.WithContext(ctx).Model(&question).Update("is_active", active).Error
}

func (s *Gorm) CreatePayment(ctx context.Context, payment *models.Payment) error {
	return s.db.WithContext(ctx).Create(payment).Error
}

func (s *Gorm) UpdatePayment(ctx context.Context, payment *models.Payment) error {
	return s.db.WithContext(ctx).Save(payment).Error
}
