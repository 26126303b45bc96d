package service

import "errors"

// ErrCakeNotFound 表示依 ID 查不到蛋糕
var ErrCakeNotFound = errors.New("cake not found")
