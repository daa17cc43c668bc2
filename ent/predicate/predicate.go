// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Campaign is the predicate function for campaign builders.
type Campaign func(*sql.Selector)

// CampaignStep is the predicate function for campaignstep builders.
type CampaignStep func(*sql.Selector)

// ChannelConfig is the predicate function for channelconfig builders.
type ChannelConfig func(*sql.Selector)

// Contact is the predicate function for contact builders.
type Contact func(*sql.Selector)

// ContactAttempt is the predicate function for contactattempt builders.
type ContactAttempt func(*sql.Selector)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// Lead is the predicate function for lead builders.
type Lead func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// Prospect is the predicate function for prospect builders.
type Prospect func(*sql.Selector)

// ProspectGroup is the predicate function for prospectgroup builders.
type ProspectGroup func(*sql.Selector)

// Recipient is the predicate function for recipient builders.
type Recipient func(*sql.Selector)

// Template is the predicate function for template builders.
type Template func(*sql.Selector)

// Tenant is the predicate function for tenant builders.
type Tenant func(*sql.Selector)
