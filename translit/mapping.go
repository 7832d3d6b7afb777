package translit

// latinMulti holds the Latin digraphs of MNS 5217:2012 together with the
// vowel + y diphthongs. Title-case and upper-case forms are listed
// explicitly so "Kh" and "KH" both become "Х" while "kH" falls back to
// single letters.
var latinMulti = []Glyph{
	{"kh", "х"}, {"ts", "ц"}, {"ch", "ч"}, {"sh", "ш"},
	{"yo", "ё"}, {"yu", "ю"}, {"ya", "я"}, {"ye", "е"}, {"zh", "ж"},
	{"ai", "ай"}, {"ei", "эй"}, {"ii", "ий"}, {"oi", "ой"},
	{"Kh", "Х"}, {"KH", "Х"}, {"Ts", "Ц"}, {"TS", "Ц"},
	{"Ch", "Ч"}, {"CH", "Ч"}, {"Sh", "Ш"}, {"SH", "Ш"},
	{"Yo", "Ё"}, {"YO", "Ё"}, {"Yu", "Ю"}, {"YU", "Ю"},
	{"Ya", "Я"}, {"YA", "Я"}, {"Ye", "Е"}, {"YE", "Е"},
	{"Zh", "Ж"}, {"ZH", "Ж"},
}

// latinSingle maps single Latin letters. J, Q and X have no Mongolian
// counterpart and pass through unchanged.
var latinSingle = []Glyph{
	{"a", "а"}, {"b", "б"}, {"v", "в"}, {"g", "г"}, {"d", "д"}, {"e", "э"},
	{"z", "з"}, {"i", "и"}, {"y", "й"}, {"k", "к"}, {"l", "л"}, {"m", "м"},
	{"n", "н"}, {"o", "о"}, {"p", "п"}, {"r", "р"}, {"s", "с"}, {"t", "т"},
	{"u", "у"}, {"f", "ф"}, {"h", "х"}, {"c", "ц"}, {"w", "в"},
	{"A", "А"}, {"B", "Б"}, {"V", "В"}, {"G", "Г"}, {"D", "Д"}, {"E", "Э"},
	{"Z", "З"}, {"I", "И"}, {"Y", "Й"}, {"K", "К"}, {"L", "Л"}, {"M", "М"},
	{"N", "Н"}, {"O", "О"}, {"P", "П"}, {"R", "Р"}, {"S", "С"}, {"T", "Т"},
	{"U", "У"}, {"F", "Ф"}, {"H", "Х"}, {"C", "Ц"}, {"W", "В"},
	{"ö", "ө"}, {"ü", "ү"}, {"Ö", "Ө"}, {"Ü", "Ү"},
}

// cyrillicLatin maps every letter of the Mongolian Cyrillic alphabet.
// Ъ/ъ and Ь/ь map to the empty string and are dropped from the output.
var cyrillicLatin = []Glyph{
	{"а", "a"}, {"б", "b"}, {"в", "v"}, {"г", "g"}, {"д", "d"}, {"е", "ye"},
	{"ё", "yo"}, {"ж", "zh"}, {"з", "z"}, {"и", "i"}, {"й", "y"}, {"к", "k"},
	{"л", "l"}, {"м", "m"}, {"н", "n"}, {"о", "o"}, {"ө", "ö"}, {"п", "p"},
	{"р", "r"}, {"с", "s"}, {"т", "t"}, {"у", "u"}, {"ү", "ü"}, {"ф", "f"},
	{"х", "kh"}, {"ц", "ts"}, {"ч", "ch"}, {"ш", "sh"}, {"щ", "shch"},
	{"ъ", ""}, {"ы", "y"}, {"ь", ""}, {"э", "e"}, {"ю", "yu"}, {"я", "ya"},
	{"А", "A"}, {"Б", "B"}, {"В", "V"}, {"Г", "G"}, {"Д", "D"}, {"Е", "Ye"},
	{"Ё", "Yo"}, {"Ж", "Zh"}, {"З", "Z"}, {"И", "I"}, {"Й", "Y"}, {"К", "K"},
	{"Л", "L"}, {"М", "M"}, {"Н", "N"}, {"О", "O"}, {"Ө", "Ö"}, {"П", "P"},
	{"Р", "R"}, {"С", "S"}, {"Т", "T"}, {"У", "U"}, {"Ү", "Ü"}, {"Ф", "F"},
	{"Х", "Kh"}, {"Ц", "Ts"}, {"Ч", "Ch"}, {"Ш", "Sh"}, {"Щ", "Shch"},
	{"Ъ", ""}, {"Ы", "Y"}, {"Ь", ""}, {"Э", "E"}, {"Ю", "Yu"}, {"Я", "Ya"},
}

// LatinCyrillic is the Latin → Cyrillic table.
var LatinCyrillic = MustGlyphMap(concat(latinMulti, latinSingle))

// CyrillicLatin is the Cyrillic → Latin table.
var CyrillicLatin = MustGlyphMap(cyrillicLatin)

func concat(parts ...[]Glyph) []Glyph {
	var n int
	for _, p := range parts {
		n += len(p)
	}
	out := make([]Glyph, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
