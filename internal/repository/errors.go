package repository

import "errors"

// 見つかりませんを統一
var ErrNotFound = errors.New("not found")
