package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	domainstore "brackk/internal/docstore"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddWithinCapが埋め込んでよいfield名
var validFieldName = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// documentsテーブルの1行。payloadはjsonb。
type documentRecord struct {
	ID         string    `gorm:"type:uuid;primaryKey"`
	Collection string    `gorm:"type:varchar(64);not null;index"`
	Data       []byte    `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"not null;autoUpdateTime"`
}

func (documentRecord) TableName() string { return "documents" }

type gormStore struct {
	db *gorm.DB
}

// DI
// main.goでこれをnewして各repositoryに注入する。
func NewGormStore(db *gorm.DB) domainstore.Store {
	return &gormStore{db: db}
}

// Migrate はdocumentsテーブルと部分uniqueインデックスを用意する。
// emailとcreditaccountのuser_idはDB側で一意を保証する
// （読み→書きの競合で二重作成されないように）。
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&documentRecord{}); err != nil {
		return err
	}

	stmts := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS ux_documents_user_email
		   ON documents ((data->>'email')) WHERE collection = 'user'`,
		`CREATE UNIQUE INDEX IF NOT EXISTS ux_documents_credit_user
		   ON documents ((data->>'user_id')) WHERE collection = 'creditaccount'`,
		`CREATE INDEX IF NOT EXISTS ix_documents_collection_user
		   ON documents (collection, (data->>'user_id'))`,
	}
	for _, s := range stmts {
		if err := db.Exec(s).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *gormStore) Insert(ctx context.Context, collection string, v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}

	rec := documentRecord{
		ID:         uuid.NewString(),
		Collection: collection,
		Data:       data,
	}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (s *gormStore) InsertUnique(ctx context.Context, collection string, keyField string, keyValue string, v any) (string, bool, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", false, err
	}

	// NOT EXISTSでkeyFieldの重複を弾く。同時挿入の競合はMigrateの
	// 部分uniqueインデックス（ON CONFLICT DO NOTHING）が最後に止める。
	id := uuid.NewString()
	res := s.db.WithContext(ctx).Exec(
		`INSERT INTO documents (id, collection, data, created_at, updated_at)
		 SELECT ?, ?, ?::jsonb, now(), now()
		 WHERE NOT EXISTS (
		   SELECT 1 FROM documents WHERE collection = ? AND data->>? = ?
		 )
		 ON CONFLICT DO NOTHING`,
		id, collection, string(data), collection, keyField, keyValue,
	)
	if res.Error != nil {
		return "", false, res.Error
	}
	if res.RowsAffected == 0 {
		return "", false, nil
	}
	return id, true, nil
}

func (s *gormStore) Get(ctx context.Context, collection string, id string) (domainstore.Document, error) {
	var rec documentRecord

	err := s.db.WithContext(ctx).
		Where("id = ? AND collection = ?", id, collection).
		First(&rec).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return domainstore.Document{}, domainstore.ErrNotFound
		}
		return domainstore.Document{}, err
	}
	return toDocument(rec), nil
}

func (s *gormStore) FindOne(ctx context.Context, collection string, filter domainstore.Filter) (domainstore.Document, error) {
	var rec documentRecord

	q := s.applyFilter(s.db.WithContext(ctx).Where("collection = ?", collection), filter)
	if err := q.First(&rec).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domainstore.Document{}, domainstore.ErrNotFound
		}
		return domainstore.Document{}, err
	}
	return toDocument(rec), nil
}

func (s *gormStore) Query(ctx context.Context, collection string, filter domainstore.Filter, opts domainstore.Options) ([]domainstore.Document, error) {
	var recs []documentRecord

	q := s.applyFilter(s.db.WithContext(ctx).Where("collection = ?", collection), filter)
	if opts.NewestFirst {
		q = q.Order("created_at DESC")
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}

	docs := make([]domainstore.Document, 0, len(recs))
	for _, rec := range recs {
		docs = append(docs, toDocument(rec))
	}
	return docs, nil
}

func (s *gormStore) UpdateFields(ctx context.Context, collection string, id string, fields domainstore.Filter) error {
	patch, err := json.Marshal(fields)
	if err != nil {
		return err
	}

	res := s.db.WithContext(ctx).
		Model(&documentRecord{}).
		Where("id = ? AND collection = ?", id, collection).
		Updates(map[string]any{
			"data":       gorm.Expr("data || ?::jsonb", string(patch)),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainstore.ErrNotFound
	}
	return nil
}

// 条件付き加算。UPDATE1文なので同時リクエストでもcapを超えない。
func (s *gormStore) AddWithinCap(ctx context.Context, collection string, filter domainstore.Filter, field string, delta float64, capField string) (bool, error) {
	// field名はSQLに埋め込むので識別子として妥当なものだけ通す
	if !validFieldName.MatchString(field) || !validFieldName.MatchString(capField) {
		return false, fmt.Errorf("invalid field name: %q / %q", field, capField)
	}

	q := s.applyFilter(s.db.WithContext(ctx).
		Model(&documentRecord{}).
		Where("collection = ?", collection), filter)

	res := q.
		Where(fmt.Sprintf("(data->>'%s')::numeric + ? <= (data->>'%s')::numeric", field, capField), delta).
		Updates(map[string]any{
			"data": gorm.Expr(
				fmt.Sprintf("jsonb_set(data, '{%s}', to_jsonb((data->>'%s')::numeric + ?))", field, field),
				delta,
			),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *gormStore) Delete(ctx context.Context, collection string, id string) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND collection = ?", id, collection).
		Delete(&documentRecord{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainstore.ErrNotFound
	}
	return nil
}

func (s *gormStore) DeleteMany(ctx context.Context, collection string, filter domainstore.Filter) (int64, error) {
	q := s.applyFilter(s.db.WithContext(ctx).Where("collection = ?", collection), filter)

	res := q.Delete(&documentRecord{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (s *gormStore) Collections(ctx context.Context) ([]string, error) {
	var names []string
	res := s.db.WithContext(ctx).
		Model(&documentRecord{}).
		Distinct().
		Order("collection").
		Pluck("collection", &names)
	if res.Error != nil {
		return nil, res.Error
	}
	return names, nil
}

// filterをjsonbの等価条件に変換する。
func (s *gormStore) applyFilter(q *gorm.DB, filter domainstore.Filter) *gorm.DB {
	for k, v := range filter {
		q = q.Where("data->>? = ?", k, fmt.Sprintf("%v", v))
	}
	return q
}

func toDocument(rec documentRecord) domainstore.Document {
	return domainstore.Document{
		ID:         rec.ID,
		Collection: rec.Collection,
		Data:       json.RawMessage(rec.Data),
		CreatedAt:  rec.CreatedAt,
		UpdatedAt:  rec.UpdatedAt,
	}
}
