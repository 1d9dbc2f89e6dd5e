package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

var templates = template.Must(template.New("mail").Parse(`
{{define "contact_notice"}}
<h2>New contact message</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
{{if .Phone}}<p><strong>Phone:</strong> {{.Phone}}</p>{{end}}
<p><strong>Message:</strong></p>
<p>{{.Message}}</p>
{{end}}

{{define "contact_ack"}}
<p>Hi {{.Name}},</p>
<p>Thanks for reaching out. Your message has been received and I will get
back to you as soon as I can.</p>
<p>— sent automatically, replies to this address are read.</p>
{{end}}

{{define "pricing_notice"}}
<h2>New pricing inquiry</h2>
<p><strong>Plan:</strong> {{.Plan}}</p>
<p><strong>Billing:</strong> {{.Billing}}</p>
<p><strong>Price:</strong> {{printf "%.2f" .Price}}</p>
{{end}}
`))

// ContactNoticeData fills the owner notification for a contact submission.
type ContactNoticeData struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// PricingNoticeData fills the owner notification for a pricing inquiry.
type PricingNoticeData struct {
	Plan    string
	Billing string
	Price   float64
}

// RenderContactNotice renders the owner-facing contact notification body.
func RenderContactNotice(data ContactNoticeData) (string, error) {
	return render("contact_notice", data)
}

// RenderContactAck renders the visitor acknowledgement body.
func RenderContactAck(data ContactNoticeData) (string, error) {
	return render("contact_ack", data)
}

// RenderPricingNotice renders the owner-facing pricing notification body.
func RenderPricingNotice(data PricingNoticeData) (string, error) {
	return render("pricing_notice", data)
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
