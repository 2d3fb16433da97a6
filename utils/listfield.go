package utils

import "strings"

// ParseListField virgülle ayrılmış serbest metni sıralı listeye çevirir:
// parçalar trim edilir, boş kalanlar atılır. "React, TypeScript, ,Go" →
// ["React","TypeScript","Go"]. İçinde virgül geçen bir etiket bu yüzden
// bölünür; bilinen ve kabul edilen bir kısıttır.
func ParseListField(raw string) []string {
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// FormatListField listeyi form alanında gösterilecek hale getirir.
func FormatListField(items []string) string {
	return strings.Join(items, ", ")
}
