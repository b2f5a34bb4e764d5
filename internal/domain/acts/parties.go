package acts

import (
	"strings"

	"acts-service-go/internal/pkg/grammar"
	"acts-service-go/internal/pkg/textutil"
)

// PrepareParties заполняет пустые подписи сторон из исходных записей о людях.
// Уже заполненные поля не трогаются. Возвращает копию.
func PrepareParties(in *ActInput) *ActInput {
	out := in.Clone()

	if p := out.Surrenderer; p != nil && !p.IsZero() {
		fill(&out.SurrendererLabel, textutil.Nominative(*p))
		fill(&out.SurrendererGenitiveLabel, grammar.Genitive(*p))
		fill(&out.SurrendererLastNameInitials, textutil.Initials(p.FullName))
	}
	if p := out.Issuer; p != nil && !p.IsZero() {
		fill(&out.IssuerLabel, textutil.Nominative(*p))
		fill(&out.IssuerGenitiveLabel, grammar.Genitive(*p))
		fill(&out.IssuerLastNameInitials, textutil.Initials(p.FullName))
	}
	if p := out.Receiver; p != nil && !p.IsZero() {
		fill(&out.ReceiverLabel, textutil.Nominative(*p))
		fill(&out.ReceiverGenitiveLabel, grammar.Genitive(*p))
		fill(&out.ReceiverLastNameInitials, textutil.Initials(p.FullName))
		fill(&out.ReceiverRankShort, textutil.ShortRank(p.Rank))
	}
	return out
}

func fill(dst *string, value string) {
	if strings.TrimSpace(*dst) == "" {
		*dst = value
	}
}

// counterpartyGenitive вторая сторона в основном предложении, в родительном падеже
func (in *ActInput) counterpartyGenitive() string {
	if in.IsSdacha() {
		return firstNonBlank(in.SurrendererGenitiveLabel, in.SurrendererLabel)
	}
	return firstNonBlank(in.IssuerGenitiveLabel, in.IssuerLabel)
}

// actionInitials подпись сдающей/выдающей стороны
func (in *ActInput) actionInitials() string {
	if in.IsSdacha() {
		return firstNonBlank(in.SurrendererLastNameInitials, in.SurrendererLabel)
	}
	return firstNonBlank(in.IssuerLastNameInitials, in.IssuerLabel)
}

func (in *ActInput) receiverInitials() string {
	return firstNonBlank(in.ReceiverLastNameInitials, in.ReceiverLabel)
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if t := strings.TrimSpace(v); t != "" {
			return t
		}
	}
	return ""
}
