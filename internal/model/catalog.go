package model

// DefaultAircraft is the fixed, ordered list of reporting units.
var DefaultAircraft = []Aircraft{
	{Label: "T-70", IDSuffix: "t70"},
	{Label: "AT-802A", IDSuffix: "at802a"},
	{Label: "BELL 429", IDSuffix: "bell429"},
	{Label: "B-360", IDSuffix: "b360"},
	{Label: "C-650", IDSuffix: "c650"},
}

const DefaultWelcomeText = "Uçuş Teknisyenleri İş Yoğunluğu Anketine Hoş Geldiniz.\n\n" +
	"Lütfen her bir kategori için ilgili hava aracına yönelik yoğunluk puanınızı 1 (En Düşük) ile 5 (En Yüksek) arasında giriniz.\n\n" +
	"Toplam puan 500 üzerinden değerlendirilecek ve ağırlıklı yüzdelik oranınız hesaplanacaktır."

var DefaultPersonnel = []string{"Örnek Personel 1", "Örnek Personel 2"}

// NewSection builds a section with one item per aircraft.
func NewSection(id, label, title string, weight int, aircraft []Aircraft) Section {
	items := make([]Item, len(aircraft))
	for i, a := range aircraft {
		items[i] = Item{ID: ItemID(id, a.IDSuffix), Label: a.Label}
	}
	return Section{ID: id, Label: label, Title: title, SectionWeight: weight, Items: items}
}

// DefaultQuestions returns a fresh copy of the built-in questionnaire.
func DefaultQuestions() []Question {
	a := DefaultAircraft
	return []Question{
		{
			ID:   1,
			Text: "Hava araçlarımızın bakımlarında uçuş teknisyenlerimizin iş yoğunluğu ağırlığı nedir?",
			Sections: []Section{
				NewSection("1a", "a", "Periyodik Bakım", 15, a),
				NewSection("1b", "b", "Günlük Bakım", 5, a),
				NewSection("1c", "c", "Arızacılık Uygulamaları ve Sıklığı", 5, a),
				NewSection("1ç", "ç", "TB Yayınlanma ve Uygulama Sıklığı", 5, a),
			},
		},
		{
			ID:   2,
			Text: "Personelin uçuş faaliyetlerinin hazırlık ve icrasına katılım yoğunluğu nedir?",
			Sections: []Section{
				NewSection("2a", "a", "Yangın Söndürme Operasyonları", 10, a),
				NewSection("2b", "b", "VIP Komuta Kontrol Uçuşları", 5, a),
				NewSection("2c", "c", "Bilfiil Uçuşa Katılım Durumu", 5, a),
				NewSection("2ç", "ç", "Uçuş Öncesi ve Sonrası Faaliyetler", 5, a),
			},
		},
		{
			ID:   3,
			Text: "Personelin ikamet ettiği yeri dışında görev yapma yoğunluğu nedir?",
			Sections: []Section{
				NewSection("3a", "a", "Yaz Dönemi", 15, a),
				NewSection("3b", "b", "Kış Dönemi", 5, a),
			},
		},
		{
			ID:   4,
			Text: "Personelin uçuşa hazır bekleme faaliyetlerinin yoğunluğu nedir?",
			Sections: []Section{
				NewSection("4a", "a", "Bekleme Faaliyetleri", 10, a),
			},
		},
		{
			ID:   5,
			Text: "Personelin idari faaliyet yoğunluğu nedir?",
			Sections: []Section{
				NewSection("5a", "a", "İkmal Faaliyetleri ve Destek Teçhizatı Bakımı", 8, a),
				NewSection("5b", "b", "Sicil Takip ve Planlama", 7, a),
			},
		},
	}
}

// DefaultAppData is the configuration used when no local snapshot is available.
func DefaultAppData() AppData {
	return AppData{
		WelcomeText: DefaultWelcomeText,
		Questions:   DefaultQuestions(),
		Personnel:   append([]string(nil), DefaultPersonnel...),
		Responses:   []Response{},
	}
}
