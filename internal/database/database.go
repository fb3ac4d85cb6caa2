// Package database archives fetched bookmarks in a local sqlite file so
// a run's raw data can be inspected after the CSV is gone. Plain
// write-through; it does not deduplicate or resume anything.
package database

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/JesseEmond/diigo-export-to-csv/internal/entities"
)

// BookmarkRecord is the archived form of one canonical bookmark.
// BookmarkedAt is the Diigo creation time; gorm owns CreatedAt.
type BookmarkRecord struct {
	ID           uint   `gorm:"primaryKey"`
	URL          string `gorm:"index;size:2048"`
	Title        string `gorm:"size:512"`
	Description  string
	Tags         string `gorm:"size:1024"` // comma-joined, as fetched
	BookmarkedAt time.Time
	ReadLater    bool
	Private      bool
	Annotations  []AnnotationRecord `gorm:"foreignKey:BookmarkID"`
	CreatedAt    time.Time
}

type AnnotationRecord struct {
	ID         uint `gorm:"primaryKey"`
	BookmarkID uint `gorm:"index"`
	Position   int  // first-seen order within the bookmark
	Content    string
	Comments   []CommentRecord `gorm:"foreignKey:AnnotationID"`
}

type CommentRecord struct {
	ID           uint `gorm:"primaryKey"`
	AnnotationID uint `gorm:"index"`
	Position     int
	Content      string
}

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&BookmarkRecord{},
		&AnnotationRecord{},
		&CommentRecord{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SaveBookmarks archives the whole export in one transaction, so a
// failed archive leaves no partial rows behind.
func (d *Database) SaveBookmarks(bookmarks []entities.Bookmark) error {
	return d.DB.Transaction(func(tx *gorm.DB) error {
		for _, b := range bookmarks {
			record := toRecord(b)
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("failed to archive bookmark %s: %w", b.URL, err)
			}
		}
		return nil
	})
}

// GetAllBookmarks returns the archive with annotations and comments
// preloaded, in insertion order.
func (d *Database) GetAllBookmarks() ([]BookmarkRecord, error) {
	var records []BookmarkRecord
	err := d.DB.
		Preload("Annotations", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Annotations.Comments", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Order("id").
		Find(&records).Error
	return records, err
}

func (d *Database) CountBookmarks() (int64, error) {
	var count int64
	err := d.DB.Model(&BookmarkRecord{}).Count(&count).Error
	return count, err
}

func toRecord(b entities.Bookmark) BookmarkRecord {
	record := BookmarkRecord{
		URL:          b.URL,
		Title:        b.Title,
		Description:  b.Description,
		Tags:         strings.Join(b.Tags, ","),
		BookmarkedAt: b.CreatedAt,
		ReadLater:    b.ReadLater,
		Private:      b.Private,
	}
	for i, a := range b.Annotations {
		annotation := AnnotationRecord{Position: i, Content: a.Content}
		for j, c := range a.Comments {
			annotation.Comments = append(annotation.Comments, CommentRecord{
				Position: j,
				Content:  c,
			})
		}
		record.Annotations = append(record.Annotations, annotation)
	}
	return record
}
