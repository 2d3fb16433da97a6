// Package turkishsearch Türkçe karakterlere duyarsız, büyük/küçük harf
// bağımsız metin eşleştirme sağlar. Public sitedeki proje araması ve
// paneldeki liste filtreleri bu paketi kullanır.
package turkishsearch

import "strings"

// foldReplacer Türkçe karakterleri ASCII karşılıklarına indirger.
// İ/ı dönüşümü strings.ToLower'ın locale bilmemesinden dolayı elle yapılır.
var foldReplacer = strings.NewReplacer(
	"İ", "i", "I", "i", "ı", "i",
	"Ş", "s", "ş", "s",
	"Ğ", "g", "ğ", "g",
	"Ü", "u", "ü", "u",
	"Ö", "o", "ö", "o",
	"Ç", "c", "ç", "c",
)

// Fold metni karşılaştırma için normalize eder.
func Fold(s string) string {
	return strings.ToLower(foldReplacer.Replace(s))
}

// Contains needle'ın haystack içinde (normalize edilmiş halde) geçip
// geçmediğini söyler. Boş needle her zaman eşleşir.
func Contains(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(Fold(haystack), Fold(needle))
}

// ContainsAny needle'ın verilen değerlerden herhangi birinde geçip
// geçmediğini söyler (ör. tag listesi).
func ContainsAny(values []string, needle string) bool {
	for _, v := range values {
		if Contains(v, needle) {
			return true
		}
	}
	return false
}
