package acts

import (
	"errors"
	"strings"

	"acts-service-go/internal/pkg/textutil"
)

// Определяем пользовательские ошибки
var (
	ErrInvalidInput   = errors.New("invalid act input")
	ErrPDFUnavailable = errors.New("pdf conversion is unavailable")
)

// ActType вид акта
type ActType string

const (
	// ActSdacha акт сдачи
	ActSdacha ActType = "sdacha"
	// ActVydacha акт выдачи
	ActVydacha ActType = "vydacha"
)

// Genitive «сдачи» / «выдачи», для имени файла
func (t ActType) Genitive() string {
	if t == ActVydacha {
		return "выдачи"
	}
	return "сдачи"
}

// PrimaryItem наименование основного оборудования в комплекте
const PrimaryItem = "ноутбук"

// KitItem позиция комплекта
type KitItem struct {
	ID         string    `json:"id" yaml:"id"`
	Name       string    `json:"name" yaml:"name" validate:"notblank,max=200"`
	Condition  Condition `json:"condition" yaml:"condition" validate:"condition"`
	DefectNote string    `json:"defectNote,omitempty" yaml:"defectNote" validate:"max=1000"`
}

// IsPrimary позиция является основным оборудованием
func (k KitItem) IsPrimary() bool {
	return strings.EqualFold(strings.TrimSpace(k.Name), PrimaryItem)
}

// Photo фотография для приложения
type Photo struct {
	DataURL string `json:"dataUrl" yaml:"dataUrl"`
	Caption string `json:"caption,omitempty" yaml:"caption" validate:"max=300"`
}

// ActInput данные для сборки акта. Поля совпадают с JSON формы акта.
type ActInput struct {
	ActType   ActType `json:"actType" yaml:"actType" validate:"oneof=sdacha vydacha"`
	ActNumber string  `json:"actNumber,omitempty" yaml:"actNumber" validate:"max=50"`
	FullDate  string  `json:"fullDate,omitempty" yaml:"fullDate" validate:"max=100"`
	Year      string  `json:"year" yaml:"year" validate:"year"`
	BasisDoc  string  `json:"basisDoc,omitempty" yaml:"basisDoc" validate:"max=500"`

	CommanderRank string `json:"commanderRank" yaml:"commanderRank" validate:"max=200"`
	CommanderSign string `json:"commanderSign" yaml:"commanderSign" validate:"max=200"`

	EquipmentName string    `json:"equipmentName" yaml:"equipmentName" validate:"max=200"`
	SerialNumber  string    `json:"serialNumber" yaml:"serialNumber" validate:"max=200"`
	KitItems      []KitItem `json:"kitItems" yaml:"kitItems" validate:"required,min=1,max=50,dive"`
	Defects       string    `json:"defects,omitempty" yaml:"defects" validate:"max=2000"`

	FlashDriveNumbers string  `json:"flashDriveNumbers,omitempty" yaml:"flashDriveNumbers" validate:"max=500"`
	PassNumbers       string  `json:"passNumbers,omitempty" yaml:"passNumbers" validate:"max=500"`
	Photos            []Photo `json:"photos,omitempty" yaml:"photos" validate:"max=20,dive"`

	SurrendererLabel            string `json:"surrendererLabel,omitempty" yaml:"surrendererLabel" validate:"max=300"`
	ReceiverLabel               string `json:"receiverLabel,omitempty" yaml:"receiverLabel" validate:"max=300"`
	IssuerLabel                 string `json:"issuerLabel,omitempty" yaml:"issuerLabel" validate:"max=300"`
	SurrendererGenitiveLabel    string `json:"surrendererGenitiveLabel,omitempty" yaml:"surrendererGenitiveLabel" validate:"max=300"`
	ReceiverGenitiveLabel       string `json:"receiverGenitiveLabel,omitempty" yaml:"receiverGenitiveLabel" validate:"max=300"`
	IssuerGenitiveLabel         string `json:"issuerGenitiveLabel,omitempty" yaml:"issuerGenitiveLabel" validate:"max=300"`
	SurrendererLastNameInitials string `json:"surrendererLastNameInitials,omitempty" yaml:"surrendererLastNameInitials" validate:"max=200"`
	ReceiverLastNameInitials    string `json:"receiverLastNameInitials,omitempty" yaml:"receiverLastNameInitials" validate:"max=200"`
	IssuerLastNameInitials      string `json:"issuerLastNameInitials,omitempty" yaml:"issuerLastNameInitials" validate:"max=200"`
	ReceiverRankShort           string `json:"receiverRankShort,omitempty" yaml:"receiverRankShort" validate:"max=100"`

	// Исходные записи о людях. Из них заполняются пустые подписи.
	Surrenderer *textutil.Person `json:"surrenderer,omitempty" yaml:"surrenderer"`
	Receiver    *textutil.Person `json:"receiver,omitempty" yaml:"receiver"`
	Issuer      *textutil.Person `json:"issuer,omitempty" yaml:"issuer"`
}

// IsSdacha акт сдачи
func (in *ActInput) IsSdacha() bool {
	return in.ActType == ActSdacha
}

// HasDefects заполнено поле «Прочие дефекты»
func (in *ActInput) HasDefects() bool {
	return strings.TrimSpace(in.Defects) != ""
}

// Clone копия с собственными срезами и записями о людях
func (in *ActInput) Clone() *ActInput {
	out := *in
	out.KitItems = append([]KitItem(nil), in.KitItems...)
	out.Photos = append([]Photo(nil), in.Photos...)
	out.Surrenderer = clonePerson(in.Surrenderer)
	out.Receiver = clonePerson(in.Receiver)
	out.Issuer = clonePerson(in.Issuer)
	return &out
}

func clonePerson(p *textutil.Person) *textutil.Person {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
