package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/tutor-contacts/internal/domain/appointment"
	"github.com/BruksfildServices01/tutor-contacts/internal/domain/contact"
	"github.com/BruksfildServices01/tutor-contacts/internal/models"
)

type ContactGormRepository struct {
	db *gorm.DB
}

var _ contact.Repository = (*ContactGormRepository)(nil)

func NewContactGormRepository(db *gorm.DB) *ContactGormRepository {
	return &ContactGormRepository{db: db}
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (r *ContactGormRepository) Atomic(
	ctx context.Context,
	userID uint,
	fn func(tx contact.Repository) error,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owner models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("id = ?", userID).
			First(&owner).Error; err != nil {
			return translate(err)
		}

		return fn(&ContactGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Contacts
// --------------------------------------------------

func (r *ContactGormRepository) ListContacts(
	ctx context.Context,
	userID uint,
	query string,
) ([]*contact.Contact, error) {

	q := r.db.WithContext(ctx).
		Preload("Appointments", orderByPosition).
		Where("user_id = ?", userID)

	query = strings.ToLower(strings.TrimSpace(query))
	if query != "" {
		like := "%" + likeEscaper.Replace(query) + "%"
		q = q.Where(
			`LOWER(name) LIKE ? ESCAPE '\' OR phone LIKE ? ESCAPE '\' OR LOWER(email) LIKE ? ESCAPE '\'`,
			like, like, like,
		)
	}

	var rows []models.Contact
	if err := q.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]*contact.Contact, 0, len(rows))
	for i := range rows {
		c, err := toDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *ContactGormRepository) GetContact(
	ctx context.Context,
	userID uint,
	contactID uint,
) (*contact.Contact, error) {

	var row models.Contact
	if err := r.db.WithContext(ctx).
		Preload("Appointments", orderByPosition).
		Where("id = ? AND user_id = ?", contactID, userID).
		First(&row).Error; err != nil {
		return nil, translate(err)
	}
	return toDomain(&row)
}

func (r *ContactGormRepository) CreateContact(
	ctx context.Context,
	userID uint,
	c *contact.Contact,
) error {

	row := fromDomain(userID, c)
	if err := r.db.WithContext(ctx).Omit("User").Create(row).Error; err != nil {
		return err
	}
	c.ID = row.ID
	return nil
}

func (r *ContactGormRepository) UpdateContact(
	ctx context.Context,
	userID uint,
	c *contact.Contact,
) error {

	row := fromDomain(userID, c)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Contact{}).
			Where("id = ? AND user_id = ?", c.ID, userID).
			Updates(map[string]any{
				"name":     row.Name,
				"phone":    row.Phone,
				"email":    row.Email,
				"address":  row.Address,
				"note":     row.Note,
				"level":    row.Level,
				"subjects": row.Subjects,
				"tags":     row.Tags,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return contact.ErrNotFound
		}

		return replaceAppointments(tx, c.ID, row.Appointments)
	})
}

func (r *ContactGormRepository) DeleteContact(
	ctx context.Context,
	userID uint,
	contactID uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", contactID, userID).
			Delete(&models.Contact{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return contact.ErrNotFound
		}

		return tx.Where("contact_id = ?", contactID).
			Delete(&models.ContactAppointment{}).Error
	})
}

func (r *ContactGormRepository) SetAvatarKey(
	ctx context.Context,
	userID uint,
	contactID uint,
	key string,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Contact{}).
		Where("id = ? AND user_id = ?", contactID, userID).
		Update("avatar_key", key)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return contact.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *ContactGormRepository) ListOtherAppointments(
	ctx context.Context,
	userID uint,
	contactID uint,
) ([]appointment.Appointment, error) {

	var rows []models.ContactAppointment
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND contact_id <> ?", userID, contactID).
		Order("contact_id ASC, position ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]appointment.Appointment, 0, len(rows))
	for _, row := range rows {
		a, err := appointment.Parse(row.Value)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func replaceAppointments(tx *gorm.DB, contactID uint, rows []models.ContactAppointment) error {
	if err := tx.Where("contact_id = ?", contactID).
		Delete(&models.ContactAppointment{}).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	for i := range rows {
		rows[i].ContactID = contactID
	}
	return tx.Create(&rows).Error
}

// likeEscaper makes the search text match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return contact.ErrNotFound
	}
	return err
}
