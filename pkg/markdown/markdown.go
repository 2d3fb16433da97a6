// Package markdown hakkımda metni gibi içerik alanlarını güvenli HTML'e
// çevirir: goldmark ile render, bluemonday ile sanitize.
package markdown

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	md = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
	)
	policy = bluemonday.UGCPolicy()
)

// ToHTML markdown metni sanitize edilmiş HTML'e çevirir. Render hatasında
// içerik olduğu gibi (escape edilerek) döner; içerik kaybolmaz.
func ToHTML(source string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(source))
	}
	return template.HTML(policy.SanitizeBytes(buf.Bytes()))
}
