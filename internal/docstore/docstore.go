package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// コレクション名はスキーマ名の小文字（original仕様）。
const (
	CollectionUser                  = "user"
	CollectionProduct               = "product"
	CollectionCartItem              = "cartitem"
	CollectionOrder                 = "order"
	CollectionCreditAccount         = "creditaccount"
	CollectionCreditIncreaseRequest = "creditincreaserequest"
	CollectionSubscriptionPlan      = "subscriptionplan"
)

// 該当ドキュメントなしを統一
var ErrNotFound = errors.New("document not found")

// Filterはトップレベル項目の等価マッチ。
type Filter map[string]any

// Queryのオプション。Limit=0は無制限。
type Options struct {
	Limit       int
	NewestFirst bool
}

// コレクションに属する1レコード。Dataは任意のJSONオブジェクト。
type Document struct {
	ID         string
	Collection string
	Data       json.RawMessage
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Dataを構造体に展開する。
func (d Document) Decode(v any) error {
	return json.Unmarshal(d.Data, v)
}

// Storeはコレクション単位の汎用的な保存・取得を約束する。
// スキーマ検証はしない（呼び出し前のバリデーションに任せる）。
type Store interface {
	// 新規ドキュメントを挿入し、採番したIDを返す。
	Insert(ctx context.Context, collection string, v any) (string, error)

	// keyFieldの一意制約付き挿入。既に同じ値があれば何もしない（created=false）。
	// 同時挿入の競合まで防ぐにはそのcollectionのkeyFieldに
	// 部分uniqueインデックスが必要（gorm実装のMigrate参照）。
	InsertUnique(ctx context.Context, collection string, keyField string, keyValue string, v any) (id string, created bool, err error)

	// IDで1件取得する。
	Get(ctx context.Context, collection string, id string) (Document, error)

	FindOne(ctx context.Context, collection string, filter Filter) (Document, error)
	Query(ctx context.Context, collection string, filter Filter, opts Options) ([]Document, error)

	// 指定ドキュメントのjsonbへfieldsをマージする。
	UpdateFields(ctx context.Context, collection string, id string, fields Filter) error

	// fieldへdeltaを加算する。ただし加算後の値がcapFieldを超えるなら
	// 何も変えずfalseを返す（1文で実行される条件付き更新）。
	AddWithinCap(ctx context.Context, collection string, filter Filter, field string, delta float64, capField string) (bool, error)

	// IDで1件削除する。該当なしはErrNotFound。
	Delete(ctx context.Context, collection string, id string) error

	DeleteMany(ctx context.Context, collection string, filter Filter) (int64, error)

	// 存在するコレクション名の一覧（診断用）。
	Collections(ctx context.Context) ([]string, error)
}
