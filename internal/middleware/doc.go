// Package middleware 提供了 HTTP 請求處理的中間件。
//
// 目前包含以 zerolog 記錄請求的日誌中間件。
package middleware
