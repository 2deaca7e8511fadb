package mailer

import (
	"bytes"
	"fmt"
	"html/template"

	"databridge-api/internal/models"
)

// JobPlaceholder stands in for the title of a job that no longer exists.
const JobPlaceholder = "the position"

type StatusData struct {
	Name     string
	JobTitle string
	Company  string
	MeetLink string
}

type statusTemplate struct {
	subject string
	body    *template.Template
}

var statusTemplates = map[models.ApplicationStatus]statusTemplate{
	models.ApplicationPending: {
		subject: "Application Received – %s",
		body: template.Must(template.New("pending").Parse(`
<p>Dear {{.Name}},</p>
<p>Thank you for applying for the <strong>{{.JobTitle}}</strong> role at <strong>{{.Company}}</strong>.</p>
<p>Your application has been received and is currently under review.</p>
<p>We will get back to you soon.</p>
<br/>
<p>Regards,<br/>{{.Company}} HR Team</p>
`)),
	},
	models.ApplicationInterviewed: {
		subject: "Interview Shortlisted – %s",
		body: template.Must(template.New("interviewed").Parse(`
<p>Dear {{.Name}},</p>
<p>Congratulations! You have been <strong>shortlisted for an interview</strong> for the role of <strong>{{.JobTitle}}</strong>.</p>
<p><strong>Interview Mode:</strong> Google Meet</p>
<p><strong>Meeting Link:</strong> <a href="{{.MeetLink}}">{{.MeetLink}}</a></p>
<p>Our HR team will contact you shortly with the interview schedule.</p>
<br/>
<p>Best regards,<br/>{{.Company}} HR Team</p>
`)),
	},
	models.ApplicationHired: {
		subject: "Congratulations! You’re Selected – %s",
		body: template.Must(template.New("hired").Parse(`
<p>Dear {{.Name}},</p>
<p>We are happy to inform you that you have been <strong>selected</strong> for the role of <strong>{{.JobTitle}}</strong> at <strong>{{.Company}}</strong>.</p>
<p>Our HR team will reach out to you shortly with the offer details.</p>
<br/>
<p>Welcome aboard! 🎉</p>
<p>Warm regards,<br/>{{.Company}} HR Team</p>
`)),
	},
	models.ApplicationRejected: {
		subject: "Application Update – %s",
		body: template.Must(template.New("rejected").Parse(`
<p>Dear {{.Name}},</p>
<p>Thank you for your interest in the <strong>{{.JobTitle}}</strong> role at <strong>{{.Company}}</strong>.</p>
<p>After careful consideration, we will not be proceeding with your application at this time.</p>
<p>We truly appreciate your effort and encourage you to apply again in the future.</p>
<br/>
<p>Wishing you all the best,<br/>{{.Company}} HR Team</p>
`)),
	},
}

// StatusEmail renders the notification for a new application status.
// ok is false for statuses that send nothing (reviewed).
func StatusEmail(status models.ApplicationStatus, to string, data StatusData) (msg Message, ok bool, err error) {
	tmpl, ok := statusTemplates[status]
	if !ok {
		return Message{}, false, nil
	}
	if data.JobTitle == "" {
		data.JobTitle = JobPlaceholder
	}

	var buf bytes.Buffer
	if err := tmpl.body.Execute(&buf, data); err != nil {
		return Message{}, false, fmt.Errorf("render %s email: %w", status, err)
	}

	return Message{
		To:      to,
		Subject: fmt.Sprintf(tmpl.subject, data.JobTitle),
		HTML:    buf.String(),
	}, true, nil
}
