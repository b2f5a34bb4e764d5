package acts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"acts-service-go/internal/pkg/textutil"
)

func TestPrepareParties(t *testing.T) {
	in := sampleInput()
	out := PrepareParties(in)

	assert.Equal(t, "Петров И.С.", out.SurrendererLastNameInitials)
	assert.Equal(t, textutil.NoWidows("рядовой Петров И.С."), out.SurrendererLabel)
	assert.Equal(t, "рядового Петрова И.С.", out.SurrendererGenitiveLabel)

	assert.Equal(t, "Халупа А.И.", out.ReceiverLastNameInitials)
	assert.Equal(t, textutil.NoWidows("командир первого взвода лейтенант Халупа А.И."), out.ReceiverLabel)
	assert.Equal(t, textutil.NoWidows("командира первого взвода лейтенанта Халупы А.И."), out.ReceiverGenitiveLabel)
	assert.Equal(t, "лейтенант", out.ReceiverRankShort)

	assert.Empty(t, out.IssuerLabel)
	assert.Empty(t, in.SurrendererLabel, "input must not be modified")
}

func TestPrepareParties_KeepsExplicitLabels(t *testing.T) {
	in := sampleInput()
	in.ReceiverLabel = "старший лейтенант Ким О.П."
	in.ReceiverRankShort = "ст. лейтенант"

	out := PrepareParties(in)
	assert.Equal(t, "старший лейтенант Ким О.П.", out.ReceiverLabel)
	assert.Equal(t, "ст. лейтенант", out.ReceiverRankShort)
	assert.Equal(t, "Халупа А.И.", out.ReceiverLastNameInitials)
}

func TestPrepareParties_NoRankFallsBackToDefault(t *testing.T) {
	in := sampleInput()
	in.Receiver = &textutil.Person{FullName: "Ким Олег"}

	out := PrepareParties(in)
	assert.Equal(t, textutil.DefaultRank, out.ReceiverRankShort)
	assert.Equal(t, "Ким О.", out.ReceiverLastNameInitials)
	assert.Equal(t, "Кима О.", out.ReceiverGenitiveLabel)
}

func TestPrepareParties_BlankPersonIgnored(t *testing.T) {
	in := sampleInput()
	in.Surrenderer = &textutil.Person{FullName: "  ", Rank: "рядовой"}

	out := PrepareParties(in)
	assert.Empty(t, out.SurrendererLabel)
	assert.Empty(t, out.actionInitials())
}

func TestCounterparty(t *testing.T) {
	in := &ActInput{ActType: ActVydacha, IssuerLabel: "старшина Сидоренко П.О."}
	assert.Equal(t, "старшина Сидоренко П.О.", in.counterpartyGenitive())
	assert.Equal(t, "старшина Сидоренко П.О.", in.actionInitials())

	in.IssuerGenitiveLabel = "старшины Сидоренко П.О."
	in.IssuerLastNameInitials = "Сидоренко П.О."
	assert.Equal(t, "старшины Сидоренко П.О.", in.counterpartyGenitive())
	assert.Equal(t, "Сидоренко П.О.", in.actionInitials())
}
