// Package campaign implements recipient enrolment, campaign lifecycle, and
// per-recipient step processing driven by campaign_step jobs.
package campaign

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/outflowhq/outflow/ent"
	"github.com/outflowhq/outflow/pkg/channels"
	"github.com/outflowhq/outflow/pkg/models"
)

// Variables is the substitution table for template rendering. Keys are the
// recognised variable names without braces; unknown variables render empty.
type Variables map[string]string

// VariablesFor builds the fixed variable table from the recipient's target
// and the channel's sender settings. Any of contact, lead, prospect may be
// nil; their variables then render empty.
func VariablesFor(contact *ent.Contact, lead *ent.Lead, prospect *ent.Prospect, settings models.ChannelSettings, now time.Time) Variables {
	vars := Variables{
		"current_date":     now.Format("2006-01-02"),
		"unsubscribe_link": "",
		"sender.name":      settings.FromName,
		"sender.email":     settings.FromEmail,
		"sender.phone":     settings.FromPhone,
	}

	if contact != nil {
		vars["contact.name"] = contact.Name
		if contact.Email != nil {
			vars["contact.email"] = *contact.Email
		}
		if contact.Phone != nil {
			vars["contact.phone"] = *contact.Phone
		}
		if contact.Position != nil {
			vars["contact.position"] = *contact.Position
		}
	}

	if lead != nil {
		vars["lead.company_name"] = lead.CompanyName
		if lead.Website != nil {
			vars["lead.website"] = *lead.Website
		}
		if lead.Industry != nil {
			vars["lead.industry"] = *lead.Industry
		}
	}

	// Prospects have no lead yet; their display name stands in for the
	// contact name.
	if prospect != nil {
		if vars["contact.name"] == "" {
			vars["contact.name"] = prospect.DisplayName
		}
		if vars["contact.phone"] == "" && prospect.Phone != nil {
			vars["contact.phone"] = *prospect.Phone
		}
	}

	return vars
}

// RenderTemplate produces the message for one send. AI-backed templates pick
// one variation uniformly at random; others use subject/body directly.
func RenderTemplate(tpl *ent.Template, vars Variables) (models.RenderedMessage, error) {
	subject := ""
	if tpl.Subject != nil {
		subject = *tpl.Subject
	}
	body := tpl.Body

	if tpl.UseAi {
		if len(tpl.Variations) == 0 {
			return models.RenderedMessage{}, channels.Errorf(channels.KindRenderError,
				"template %s is AI-backed but has no variations", tpl.ID)
		}
		v := tpl.Variations[rand.IntN(len(tpl.Variations))]
		if s, ok := v["subject"]; ok {
			subject = s
		}
		if b, ok := v["body"]; ok {
			body = b
		}
	}

	kind := models.ChannelKind(tpl.ChannelKind)
	return models.RenderedMessage{
		Subject: substitute(subject, vars),
		Body:    substitute(body, vars),
		HTML:    kind == models.ChannelEmailSMTP || kind == models.ChannelEmailAPI,
	}, nil
}

// substitute replaces {{variable}} occurrences with table values in a single
// linear scan. Unknown variables render as the empty string, never as the
// literal placeholder.
func substitute(s string, vars Variables) string {
	if !strings.Contains(s, "{{") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for {
		open := strings.Index(s, "{{")
		if open < 0 {
			b.WriteString(s)
			break
		}
		close := strings.Index(s[open:], "}}")
		if close < 0 {
			b.WriteString(s)
			break
		}
		close += open

		b.WriteString(s[:open])
		name := strings.TrimSpace(s[open+2 : close])
		b.WriteString(vars[name])
		s = s[close+2:]
	}
	return b.String()
}
