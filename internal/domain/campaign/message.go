package campaign

import (
	"strings"
	"text/template"
	"time"

	"shop-winback/internal/domain/coupon"
)

const deadlineLayout = "02/01/2006 às 15:04"

var messageTemplate = template.Must(template.New("winback").Parse(
	`🌟 Olá, {{.FirstName}}! 🌟
🎉 Já faz *{{.Days}} dias* que você não compra nada na {{.StoreName}}! A gente sente sua falta! Para te dar boas-vindas de volta, temos um presentão pra você!
🎁 *Use o cupom:* *{{.Code}}* e ganhe *{{.PercentOff}}% de desconto* na sua próxima compra! 
🛒 Dá uma olhada nos nossos novos produtos e aproveita essa oferta incrível. Só presta atenção para não deixar esta oportunidade escapar, o cupom é válido somente até *{{.Deadline}}*!
👉 *Como usar:* Na hora de finalizar a compra, insira o código *{{.Code}}* no campo de cupom de desconto.
Estamos doidos pra te ver de novo! Se precisar de qualquer coisa, é só chamar! 😊

⚠️ Este número de WhatsApp é apenas para notificações sobre ofertas. Para dúvidas ou suporte, por favor, utilize o número: {{.SupportPhone}}`))

type messageData struct {
	FirstName    string
	Days         int
	StoreName    string
	Code         string
	PercentOff   int
	Deadline     string
	SupportPhone string
}

// Composer renders the win-back message. Output depends only on its inputs.
type Composer struct {
	location     *time.Location
	storeName    string
	supportPhone string
}

func NewComposer(location *time.Location, storeName, supportPhone string) *Composer {
	if location == nil {
		location = time.UTC
	}
	return &Composer{
		location:     location,
		storeName:    storeName,
		supportPhone: supportPhone,
	}
}

// Deadline formats a coupon validity end as shown to the customer.
func (c *Composer) Deadline(validTo time.Time) string {
	return validTo.In(c.location).Format(deadlineLayout)
}

func (c *Composer) Compose(firstName string, code coupon.Code, percentOff, days int, validTo time.Time) string {
	var b strings.Builder
	// strings.Builder never fails a write.
	_ = messageTemplate.Execute(&b, messageData{
		FirstName:    firstName,
		Days:         days,
		StoreName:    c.storeName,
		Code:         code.String(),
		PercentOff:   percentOff,
		Deadline:     c.Deadline(validTo),
		SupportPhone: c.supportPhone,
	})
	return b.String()
}
