package acts

import (
	"bytes"
	"encoding/base64"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"

	"acts-service-go/internal/pkg/textutil"
)

func sampleInput() *ActInput {
	return &ActInput{
		ActType:       ActSdacha,
		ActNumber:     "12",
		FullDate:      "«05» марта 2026 г.",
		Year:          "2026",
		BasisDoc:      "приказ командира роты № 34",
		CommanderRank: "майор",
		CommanderSign: "И.И. Иванов",
		EquipmentName: "Lenovo ThinkPad E14",
		SerialNumber:  "SN-001",
		KitItems: []KitItem{
			{ID: "1", Name: "ноутбук", Condition: ConditionOK},
			{ID: "2", Name: "мышь", Condition: ConditionOK},
			{ID: "3", Name: "сумка", Condition: ConditionOK},
		},
		Surrenderer: &textutil.Person{FullName: "Петров Иван Сергеевич", Rank: "рядовой"},
		Receiver: &textutil.Person{
			FullName: "Халупа Андрей Игоревич",
			Rank:     "лейтенант",
			Position: "командир первого взвода",
		},
	}
}

func pngDataURL(t *testing.T, w, h int) string {
	t.Helper()
	var buf bytes.Buffer
	img := imaging.New(w, h, color.NRGBA{G: 128, A: 255})
	require.NoError(t, imaging.Encode(&buf, img, imaging.PNG))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}
