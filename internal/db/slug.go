package db

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// slugInvalidChars 匹配除小写字母、数字、连字符以外的字符
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9-]+`)
	// slugRepeatHyphens 匹配连续出现的连字符
	slugRepeatHyphens = regexp.MustCompile(`-{2,}`)
)

// Slugify 将名称或标题转换为 URL 友好的 slug：
// 先做 Unicode 规范化去掉重音符号，再转小写、把空格换成连字符，
// 最后去掉其余非法字符并折叠多余的连字符。
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)

	result = strings.ToLower(result)
	result = strings.ReplaceAll(result, " ", "-")
	result = slugInvalidChars.ReplaceAllString(result, "")
	result = slugRepeatHyphens.ReplaceAllString(result, "-")

	return strings.Trim(result, "-")
}

// deriveSlug 在保存时为可 slug 化的模型派生标识：
// 仅在 slug 为空时从名称派生，重新保存永远不会覆盖已有 slug。
// slug 冲突由唯一索引兜底，这里不做后缀消歧。
func deriveSlug(slug, source string) string {
	if trimmed := strings.TrimSpace(slug); trimmed != "" {
		return trimmed
	}
	return Slugify(source)
}
