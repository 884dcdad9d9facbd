package notifications

import "html/template"

const layout = `{{define "layout"}}<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #222;">
{{template "content" .}}
<p style="color: #888; font-size: 12px;">{{.BusinessName}}</p>
</body>
</html>{{end}}`

var templateSources = map[string]string{
	"booking_created": `{{define "content"}}
<h2>Thank you for your booking, {{.Appointment.FullName}}!</h2>
<p>We have received your request for a <b>{{.Appointment.SessionType}}</b> session on
<b>{{.Date}}</b> at <b>{{.Time}}</b>.</p>
<p>Your appointment is pending confirmation. We will contact you shortly.</p>
{{end}}`,

	"booking_alert": `{{define "content"}}
<h2>New booking</h2>
<ul>
<li>Name: {{.Appointment.FullName}}</li>
<li>Email: {{.Appointment.Email}}</li>
{{with .Appointment.Phone}}<li>Phone: {{.}}</li>{{end}}
<li>Session: {{.Appointment.SessionType}}</li>
<li>Date: {{.Date}} {{.Time}}</li>
{{with .Appointment.Notes}}<li>Notes: {{.}}</li>{{end}}
</ul>
{{end}}`,

	"appointment_confirmed": `{{define "content"}}
<h2>Your appointment is confirmed</h2>
<p>Hi {{.Appointment.FullName}}, your {{.Appointment.SessionType}} session on
<b>{{.Date}}</b> at <b>{{.Time}}</b> is confirmed. See you there!</p>
{{end}}`,

	"appointment_cancelled": `{{define "content"}}
<h2>Your appointment has been cancelled</h2>
<p>Hi {{.Appointment.FullName}}, your session on <b>{{.Date}}</b> at <b>{{.Time}}</b>
has been cancelled. Feel free to book another time.</p>
{{end}}`,

	"appointment_rescheduled": `{{define "content"}}
<h2>Your appointment has been moved</h2>
<p>Hi {{.Appointment.FullName}}, your session previously scheduled for {{.PreviousDate}} at {{.PreviousTime}}
now takes place on <b>{{.Date}}</b> at <b>{{.Time}}</b>.</p>
{{end}}`,

	"contact_received": `{{define "content"}}
<h2>New contact message</h2>
<ul>
<li>Name: {{.Message.FullName}}</li>
<li>Email: {{.Message.Email}}</li>
{{with .Message.Phone}}<li>Phone: {{.}}</li>{{end}}
</ul>
<p>{{.Message.Message}}</p>
{{end}}`,
}

var subjects = map[string]string{
	"booking_created":         "We received your booking",
	"booking_alert":           "New booking request",
	"appointment_confirmed":   "Your appointment is confirmed",
	"appointment_cancelled":   "Your appointment has been cancelled",
	"appointment_rescheduled": "Your appointment has been rescheduled",
	"contact_received":        "New contact form message",
}

func parseTemplates() map[string]*template.Template {
	out := make(map[string]*template.Template, len(templateSources))
	for name, src := range templateSources {
		t := template.Must(template.New(name).Parse(layout))
		out[name] = template.Must(t.Parse(src))
	}
	return out
}
