package dao

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DAO is the CRUD capability shared by every entity table
type DAO[T any] interface {
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, id uint, entity *T) error
	Delete(ctx context.Context, id uint) error
}

// GenericDAO implements DAO for one entity type on top of gorm
type GenericDAO[T any] struct {
	db *gorm.DB
}

// NewGenericDAO creates a DAO for entity type T
func NewGenericDAO[T any](db *gorm.DB) *GenericDAO[T] {
	return &GenericDAO[T]{db: db}
}

// WithTx returns a copy of the DAO bound to the given transaction
func (d *GenericDAO[T]) WithTx(tx *gorm.DB) *GenericDAO[T] {
	return &GenericDAO[T]{db: tx}
}

// DB exposes the underlying handle for entity-specific queries
func (d *GenericDAO[T]) DB(ctx context.Context) *gorm.DB {
	return d.db.WithContext(ctx)
}

// FindAll returns every row in primary-key order
func (d *GenericDAO[T]) FindAll(ctx context.Context) ([]T, error) {
	var entities []T
	query := d.db.WithContext(ctx)
	stmt := &gorm.Statement{DB: d.db}
	if err := stmt.Parse(new(T)); err == nil {
		for _, field := range stmt.Schema.PrimaryFields {
			query = query.Order(clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: field.DBName}})
		}
	}
	if err := query.Find(&entities).Error; err != nil {
		return nil, translateError(err, entityName[T]())
	}
	return entities, nil
}

func (d *GenericDAO[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	if err := d.db.WithContext(ctx).First(&entity, id).Error; err != nil {
		return nil, translateError(err, fmt.Sprintf("%s %d", entityName[T](), id))
	}
	return &entity, nil
}

func (d *GenericDAO[T]) Create(ctx context.Context, entity *T) error {
	if err := d.db.WithContext(ctx).Create(entity).Error; err != nil {
		return translateError(err, entityName[T]())
	}
	return nil
}

// Update overwrites every scalar column of the row with the given id.
// Associations, the primary key and created_at are left untouched.
func (d *GenericDAO[T]) Update(ctx context.Context, id uint, entity *T) error {
	if _, err := d.FindByID(ctx, id); err != nil {
		return err
	}
	err := d.db.WithContext(ctx).
		Model(new(T)).
		Where("id = ?", id).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(entity).Error
	if err != nil {
		return translateError(err, entityName[T]())
	}
	return nil
}

func (d *GenericDAO[T]) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		return translateError(result.Error, entityName[T]())
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError(fmt.Sprintf("%s %d not found", entityName[T](), id))
	}
	return nil
}

// translateError converts gorm and driver errors into typed domain errors
func translateError(err error, subject string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return models.NewNotFoundError(subject + " not found")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return models.NewIntegrityError(subject+" already exists", err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return models.NewIntegrityError(subject+" references a missing record", err)
	}
	// Drivers without an error translator still report constraint names in the message
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unique constraint"), strings.Contains(msg, "duplicate key"):
		return models.NewIntegrityError(subject+" already exists", err)
	case strings.Contains(msg, "foreign key"):
		return models.NewIntegrityError(subject+" references a missing record", err)
	}
	return fmt.Errorf("%s: %w", subject, err)
}

func entityName[T any]() string {
	return strings.ToLower(reflect.TypeFor[T]().Name())
}
