package campaign

import (
	"testing"
	"time"

	"github.com/outflowhq/outflow/ent"
	"github.com/outflowhq/outflow/pkg/channels"
	"github.com/outflowhq/outflow/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestSubstituteReplacesKnownVariables(t *testing.T) {
	vars := Variables{
		"contact.name":      "Ada",
		"lead.company_name": "Analytical Engines Ltd",
	}
	out := substitute("Hi {{contact.name}}, greetings from {{lead.company_name}}!", vars)
	assert.Equal(t, "Hi Ada, greetings from Analytical Engines Ltd!", out)
}

func TestSubstituteUnknownVariableRendersEmpty(t *testing.T) {
	out := substitute("Hello {{contact.name}}{{no.such.var}}!", Variables{"contact.name": "Ada"})
	assert.Equal(t, "Hello Ada!", out)
}

func TestSubstituteLeavesUnterminatedPlaceholder(t *testing.T) {
	out := substitute("Hello {{contact.name", Variables{"contact.name": "Ada"})
	assert.Equal(t, "Hello {{contact.name", out)
}

func TestSubstituteTrimsVariableWhitespace(t *testing.T) {
	out := substitute("Hi {{ contact.name }}", Variables{"contact.name": "Ada"})
	assert.Equal(t, "Hi Ada", out)
}

func TestVariablesForBuildsFullTable(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	contact := &ent.Contact{
		Name:     "Ada Lovelace",
		Email:    strPtr("ada@example.com"),
		Phone:    strPtr("4479460001"),
		Position: strPtr("CTO"),
	}
	lead := &ent.Lead{
		CompanyName: "Analytical Engines Ltd",
		Website:     strPtr("https://engines.example"),
		Industry:    strPtr("computing"),
	}
	settings := models.ChannelSettings{FromName: "Sales", FromEmail: "sales@outflow.example"}

	vars := VariablesFor(contact, lead, nil, settings, now)

	assert.Equal(t, "Ada Lovelace", vars["contact.name"])
	assert.Equal(t, "ada@example.com", vars["contact.email"])
	assert.Equal(t, "CTO", vars["contact.position"])
	assert.Equal(t, "Analytical Engines Ltd", vars["lead.company_name"])
	assert.Equal(t, "computing", vars["lead.industry"])
	assert.Equal(t, "2026-03-14", vars["current_date"])
	assert.Equal(t, "Sales", vars["sender.name"])
	assert.Equal(t, "sales@outflow.example", vars["sender.email"])
}

func TestVariablesForProspectFallsBackToDisplayName(t *testing.T) {
	p := &ent.Prospect{DisplayName: "tg-user", Phone: strPtr("4915512345")}
	vars := VariablesFor(nil, nil, p, models.ChannelSettings{}, time.Now())

	assert.Equal(t, "tg-user", vars["contact.name"])
	assert.Equal(t, "4915512345", vars["contact.phone"])
}

func TestRenderTemplateSubstitutesSubjectAndBody(t *testing.T) {
	tpl := &ent.Template{
		ID:          "tpl-1",
		ChannelKind: "email_smtp",
		Subject:     strPtr("For {{contact.name}}"),
		Body:        "Hello {{contact.name}}",
	}

	msg, err := RenderTemplate(tpl, Variables{"contact.name": "Ada"})
	require.NoError(t, err)
	assert.Equal(t, "For Ada", msg.Subject)
	assert.Equal(t, "Hello Ada", msg.Body)
	assert.True(t, msg.HTML)
}

func TestRenderTemplateNonEmailIsPlainText(t *testing.T) {
	tpl := &ent.Template{ID: "tpl-1", ChannelKind: "telegram", Body: "hi"}
	msg, err := RenderTemplate(tpl, nil)
	require.NoError(t, err)
	assert.False(t, msg.HTML)
}

func TestRenderTemplatePicksAIVariation(t *testing.T) {
	tpl := &ent.Template{
		ID:          "tpl-1",
		ChannelKind: "email_api",
		Body:        "base body",
		UseAi:       true,
		Variations: []map[string]string{
			{"subject": "S", "body": "variant for {{contact.name}}"},
		},
	}

	msg, err := RenderTemplate(tpl, Variables{"contact.name": "Ada"})
	require.NoError(t, err)
	assert.Equal(t, "S", msg.Subject)
	assert.Equal(t, "variant for Ada", msg.Body)
}

func TestRenderTemplateAIWithoutVariationsFails(t *testing.T) {
	tpl := &ent.Template{ID: "tpl-1", ChannelKind: "email_api", Body: "base", UseAi: true}

	_, err := RenderTemplate(tpl, nil)
	require.Error(t, err)
	assert.Equal(t, channels.KindRenderError, channels.KindOf(err))
}
