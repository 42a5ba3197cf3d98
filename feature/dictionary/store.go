package dictionary

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ODNZSL/nzsl-dictionary-scripts/feature/dictionary/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store owns the dictionary tables. All mutating operations use
// insert-or-ignore semantics keyed on the uniqueness constraints declared on
// the models, which is what makes re-running an interrupted import safe.
type Store struct {
	db *gorm.DB
}

// NewStore wraps an open database connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// EnsureSchema creates any missing tables and indexes. It never drops or
// alters existing data, so calling it repeatedly within a run is safe.
// On first creation it stamps the store with a date-based version integer
// that the iOS client uses to detect a refreshed database.
func (s *Store) EnsureSchema() error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.AutoMigrate(
			&models.Word{},
			&models.Video{},
			&models.Example{},
			&models.Topic{},
			&models.WordTopic{},
		); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}

		var version int
		if err := tx.Raw("PRAGMA user_version").Scan(&version).Error; err != nil {
			return fmt.Errorf("failed to read store version: %w", err)
		}
		if version == 0 {
			stamp, err := strconv.Atoi(time.Now().Format("20060102"))
			if err != nil {
				return err
			}
			// PRAGMA does not accept bound parameters.
			if err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", stamp)).Error; err != nil {
				return fmt.Errorf("failed to stamp store version: %w", err)
			}
		}
		return nil
	})
}

// Version returns the store-level version stamp.
func (s *Store) Version() (int, error) {
	var version int
	err := s.db.Raw("PRAGMA user_version").Scan(&version).Error
	return version, err
}

// InsertWord inserts a word, ignoring the insert if a word with the same id
// already exists. Returns whether a row was actually created.
func (s *Store) InsertWord(w *models.Word) (bool, error) {
	res := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(w)
	return res.RowsAffected > 0, res.Error
}

// InsertExample inserts an example, ignoring duplicates on
// (word_id, display_order).
func (s *Store) InsertExample(e *models.Example) (bool, error) {
	res := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(e)
	return res.RowsAffected > 0, res.Error
}

// InsertTopic associates a word with a named topic, creating the topic row
// lazily. Both inserts ignore duplicates.
func (s *Store) InsertTopic(wordID int64, name string) (bool, error) {
	res := s.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Topic{Name: name})
	if res.Error != nil {
		return false, res.Error
	}

	res = s.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.WordTopic{WordID: wordID, TopicName: name})
	return res.RowsAffected > 0, res.Error
}

// InsertVideo appends a row to the asset ledger, ignoring duplicates on
// (word_id, video_type, filename).
func (s *Store) InsertVideo(v *models.Video) (bool, error) {
	res := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(v)
	return res.RowsAffected > 0, res.Error
}

// SetPicture updates a word's picture filename.
func (s *Store) SetPicture(wordID int64, filename string) error {
	return s.db.Model(&models.Word{}).
		Where("id = ?", wordID).
		Update("picture", filename).Error
}

// SetVideo updates a word's main video URL.
func (s *Store) SetVideo(wordID int64, url string) error {
	return s.db.Model(&models.Word{}).
		Where("id = ?", wordID).
		Update("video", url).Error
}

// SetExampleVideo back-fills the video reference on the example identified by
// (word id, display order).
func (s *Store) SetExampleVideo(wordID int64, displayOrder int, url string) error {
	return s.db.Model(&models.Example{}).
		Where("word_id = ? AND display_order = ?", wordID, displayOrder).
		Update("video", url).Error
}

// PruneVideos deletes every asset ledger row whose word id no longer exists
// in the words table and reports the number removed. Idempotent: a second
// run deletes zero rows.
func (s *Store) PruneVideos() (int64, error) {
	res := s.db.
		Where("word_id NOT IN (?)", s.db.Model(&models.Word{}).Select("id")).
		Delete(&models.Video{})
	return res.RowsAffected, res.Error
}

// Words returns every word row in insertion order.
func (s *Store) Words() ([]models.Word, error) {
	var words []models.Word
	if err := s.db.Find(&words).Error; err != nil {
		return nil, fmt.Errorf("failed to load words: %w", err)
	}
	return words, nil
}

// CountWords returns the number of word rows.
func (s *Store) CountWords() (int64, error) {
	var n int64
	err := s.db.Model(&models.Word{}).Count(&n).Error
	return n, err
}
