package acts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acts-service-go/internal/pkg/docmodel"
	"acts-service-go/internal/pkg/textutil"
)

func build(in *ActInput) *docmodel.Document {
	return NewAssembler(Options{}).Build(PrepareParties(in))
}

func TestAssembler_Build(t *testing.T) {
	doc := build(sampleInput())
	text := doc.Text()

	assert.Equal(t, PageA4, doc.Page)
	assert.Equal(t, FontName, doc.Font)

	order := []string{
		"УТВЕРЖДАЮ",
		DefaultApproverTitle,
		"АКТ № 12",
		"приёма-передачи оборудования",
		"г. Санкт-Петербург\t«05» марта 2026 г.",
		"Основание: приказ командира роты № 34.",
		"Настоящий",
		"1. Ноутбук «Lenovo ThinkPad E14»",
		"Сдал:    Петров И.С. /_______________ | «05» марта 2026 г.",
		"Принял: Халупа А.И. /_______________ | «05» марта 2026 г.",
	}
	last := -1
	for _, s := range order {
		idx := strings.Index(text, s)
		require.GreaterOrEqual(t, idx, 0, "missing %q in:\n%s", s, text)
		assert.Greater(t, idx, last, "%q out of order", s)
		last = idx
	}

	assert.Contains(t, text, "Халупа А.И. принял")
	assert.Contains(t, text, "рядового Петрова И.С.")
	assert.Contains(t, text, "комплекте: ноутбук, мышь, сумка)")
	assert.NotContains(t, text, "Приложение")
	assert.NotContains(t, text, "\f")
	assert.NotContains(t, text, Missing)
}

func TestAssembler_MissingDataAndPlaceholderDate(t *testing.T) {
	in := sampleInput()
	in.FullDate = ""
	in.EquipmentName = ""
	in.ActNumber = ""
	in.BasisDoc = ""

	text := build(in).Text()
	assert.Contains(t, text, "«___» ___________ 2026 г.")
	assert.Contains(t, text, "Ноутбук «"+Missing+"»")
	assert.Contains(t, text, "АКТ\n")
	assert.NotContains(t, text, "Основание")
}

func TestAssembler_Vydacha(t *testing.T) {
	in := sampleInput()
	in.ActType = ActVydacha
	in.Surrenderer = nil
	in.Issuer = &textutil.Person{FullName: "Сидоренко Павел Олегович", Rank: "старшина"}

	text := build(in).Text()
	assert.Contains(t, text, "Выдал:   Сидоренко П.О.")
	assert.Contains(t, text, "старшины Сидоренко П.О.")
}

func TestAssembler_BlankSignature(t *testing.T) {
	in := sampleInput()
	in.Surrenderer = nil
	in.SurrendererLabel = "рядовой Петров И.С."

	text := build(in).Text()
	assert.Contains(t, text, "Сдал:    рядовой Петров И.С. /")

	in = sampleInput()
	in.Surrenderer = nil
	text = build(in).Text()
	assert.Contains(t, text, "Сдал:    "+BlankName+SignatureTail)
	assert.Contains(t, text, "принял от\u00a0"+Missing)
}

func TestAssembler_AdditionalItems(t *testing.T) {
	in := sampleInput()
	in.FlashDriveNumbers = "7"
	text := build(in).Text()
	assert.Contains(t, text, textutil.NoWidows("3. USB-накопитель МО РФ № 7."))
	assert.NotContains(t, text, "2. Электронный пропуск")

	in.PassNumbers = "123"
	text = build(in).Text()
	assert.Contains(t, text, "2. Электронный пропуск № 123.")
}

func TestAssembler_Appendix(t *testing.T) {
	in := sampleInput()
	in.KitItems[1].Condition = ConditionDefective
	in.KitItems[1].DefectNote = "не работает колесо"
	in.KitItems[2].Condition = ConditionAbsent
	in.Defects = "царапина на крышке"

	text := build(in).Text()
	assert.Contains(t, text, textutil.NoWidows(ClauseDefective))
	assert.NotContains(t, text, textutil.NoWidows(ClausePeripheryBroken))
	assert.Contains(t, text, "\f\nПриложение к акту № 12\n")
	assert.Contains(t, text, "1. мышь – неисправна: не работает колесо.")
	assert.Contains(t, text, "2. сумка – отсутствует.")
	assert.Contains(t, text, textutil.NoWidows("3. Прочие дефекты: царапина на крышке."))
	assert.Contains(t, text, "С перечнем ознакомлен и согласен:")
	assert.Contains(t, text, "лейтенант\n")
	assert.NotContains(t, text, "Фотоматериалы")
}

func TestAssembler_PeripheryDefective(t *testing.T) {
	in := sampleInput()
	in.KitItems[1].Condition = ConditionDefective

	text := build(in).Text()
	assert.Contains(t, text, textutil.NoWidows(ClausePeripheryBroken))
	assert.Contains(t, text, "1. мышь – неисправна.")
	assert.NotContains(t, text, "Прочие дефекты")
}

// Перечень приложения нумеруется своими номерами, независимо от пунктов акта
func TestAssembler_IncompleteSetAppendixNumbering(t *testing.T) {
	in := sampleInput()
	in.KitItems = []KitItem{
		{ID: "1", Name: "ноутбук", Condition: ConditionOK},
		{ID: "2", Name: "сумка", Condition: ConditionAbsent},
	}

	text := build(in).Text()
	assert.Contains(t, text, textutil.NoWidows(ClauseIncomplete))
	assert.Contains(t, text, "Приложение к акту № 12")
	assert.Contains(t, text, "\n1. сумка – отсутствует.\n")
	assert.NotContains(t, text, "2. сумка")
	assert.Equal(t, []string{"1. сумка – отсутствует."}, DefectLines(in.KitItems, in.Defects))
}

func TestAssembler_AppendixIffNeeded(t *testing.T) {
	for _, c := range Conditions {
		in := sampleInput()
		in.KitItems[2].Condition = c
		text := build(in).Text()
		assert.Equal(t, GoesToAppendix(c), strings.Contains(text, "Приложение к акту"), c)
	}
}

func TestAssembler_Photos(t *testing.T) {
	in := sampleInput()
	in.Photos = []Photo{
		{DataURL: pngDataURL(t, 800, 300), Caption: "вид сверху"},
		{DataURL: "data:image/png;base64,!!!"},
		{DataURL: pngDataURL(t, 40, 20)},
	}

	doc := build(in)
	text := doc.Text()
	assert.Contains(t, text, "Приложение к акту № 12")
	assert.Contains(t, text, "Фотоматериалы:")
	assert.Contains(t, text, "Фото 1: вид сверху")
	assert.NotContains(t, text, "Фото 2")
	assert.Contains(t, text, "Фото 3")

	images := doc.Images()
	require.Len(t, images, 2)
	assert.Equal(t, 400, images[0].Width)
	assert.Equal(t, 150, images[0].Height)
	assert.Equal(t, 40, images[1].Width)
	assert.Equal(t, "image/png", images[1].MIME)
}

func TestDefectLines(t *testing.T) {
	items := []KitItem{
		{Name: "ноутбук", Condition: ConditionOK},
		{Name: "сумка", Condition: ConditionAbsent},
	}
	assert.Equal(t, []string{"1. сумка – отсутствует."}, DefectLines(items, ""))
	assert.Equal(t,
		[]string{textutil.NoWidows("1. Прочие дефекты: скол.")},
		DefectLines(items[:1], "скол"),
	)
	assert.Empty(t, DefectLines(items[:1], " "))
}

func TestSignatureColumns(t *testing.T) {
	left, right := signatureColumns()
	assert.Equal(t, 5145, left)
	assert.Equal(t, 4209, right)
	assert.Equal(t, 9354, ContentWidth)
}
