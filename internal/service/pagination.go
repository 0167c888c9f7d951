package service

import (
	"errors"

	"gorm.io/gorm"
)

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func normalizePerPage(perPage, fallback int) int {
	if perPage < 1 {
		return fallback
	}
	return perPage
}

func totalPages(total int64, perPage int) int {
	if total == 0 {
		return 1
	}
	pages := int(total) / perPage
	if int(total)%perPage != 0 {
		pages++
	}
	return pages
}

// isUniqueViolation 判断是否为唯一索引冲突。
// 依赖连接开启 TranslateError，由驱动翻译为 gorm 的统一错误。
func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
