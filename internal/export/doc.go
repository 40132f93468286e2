package export

import (
	"html/template"
	"io"
	"time"

	"workload_survey/internal/scoring"
)

const summaryTemplate = `<html xmlns:o='urn:schemas-microsoft-com:office:office' xmlns:w='urn:schemas-microsoft-com:office:word' xmlns='http://www.w3.org/TR/REC-html40'>
<head><meta charset='utf-8'><title>Dinamik Yoğunluk Analizi Raporu</title>
<style>
body { font-family: 'Segoe UI', Tahoma, sans-serif; padding: 20px; line-height: 1.6; }
h1 { color: #15803d; text-align: center; border-bottom: 3px solid #15803d; padding-bottom: 10px; }
.info-text { background-color: #f0fdf4; border: 2px solid #bbf7d0; padding: 15px; margin-bottom: 25px; color: #14532d; font-weight: bold; }
.reference { text-align: center; margin: 30px 0; padding: 20px; border: 2px dashed #15803d; }
.reference-value { font-size: 32px; color: #15803d; font-weight: 900; }
.unit-table { width: 100%; border-collapse: collapse; margin-top: 20px; }
.unit-table th { background-color: #15803d; color: white; padding: 10px; border: 1px solid #166534; }
.unit-table td { padding: 10px; border: 1px solid #e2e8f0; text-align: center; }
.footer { margin-top: 50px; text-align: center; font-size: 10px; color: #94a3b8; border-top: 1px solid #e2e8f0; padding-top: 10px; }
</style>
</head>
<body>
<h1>DİNAMİK YOĞUNLUK ANALİZİ RAPORU</h1>
<p style='text-align: right;'><strong>Rapor Tarihi:</strong> {{.Date}}</p>
<div class="info-text">Yüzdelik oranlamalar, kurum içi en yüksek skor baz alınarak yapılmaktadır. Bu yöntem, en yoğun skor birime göre diğer birimlerin göreceli yükünü göstermektedir.</div>
<div class="reference">
<p>Sistemdeki En Yüksek Skor (Referans)</p>
<div class="reference-value">{{.Summary.ReferenceScore}}</div>
</div>
<h2>BİRİM BAZLI YOĞUNLUK VERİLERİ</h2>
<table class="unit-table">
<thead><tr><th>HAVA ARACI BİRİMİ</th><th>KATILIMCI SAYISI</th><th>ORTALAMA SKOR</th><th>YOĞUNLUK ORANI (%)</th></tr></thead>
<tbody>
{{- range .Summary.Units}}
<tr><td style="text-align: left; font-weight: bold;">{{.Aircraft.Label}}</td><td>{{.Participants}} Kişi</td><td>{{.RoundedAverage}}</td><td style="color: #15803d; font-weight: bold;">%{{.IntensityRatio}}</td></tr>
{{- end}}
</tbody>
</table>
<div class="footer">Bu rapor anket verileri kullanılarak otomatik olarak üretilmiştir.</div>
</body>
</html>
`

var summaryTmpl = template.Must(template.New("summary").Parse(summaryTemplate))

// utf8BOM lets Word detect the encoding of the HTML body.
const utf8BOM = "\ufeff"

// WriteSummary renders the unit summary as an HTML document Word opens natively.
func WriteSummary(w io.Writer, s scoring.Summary, date time.Time) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}
	return summaryTmpl.Execute(w, struct {
		Date    string
		Summary scoring.Summary
	}{
		Date:    date.Format(dateLayout),
		Summary: s,
	})
}
