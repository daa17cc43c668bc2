// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/outflowhq/outflow/ent/campaign"
	"github.com/outflowhq/outflow/ent/campaignstep"
	"github.com/outflowhq/outflow/ent/channelconfig"
	"github.com/outflowhq/outflow/ent/contact"
	"github.com/outflowhq/outflow/ent/contactattempt"
	"github.com/outflowhq/outflow/ent/conversation"
	"github.com/outflowhq/outflow/ent/job"
	"github.com/outflowhq/outflow/ent/lead"
	"github.com/outflowhq/outflow/ent/message"
	"github.com/outflowhq/outflow/ent/prospect"
	"github.com/outflowhq/outflow/ent/prospectgroup"
	"github.com/outflowhq/outflow/ent/recipient"
	"github.com/outflowhq/outflow/ent/schema"
	"github.com/outflowhq/outflow/ent/template"
	"github.com/outflowhq/outflow/ent/tenant"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	campaignFields := schema.Campaign{}.Fields()
	_ = campaignFields
	// campaignDescName is the schema descriptor for name field.
	campaignDescName := campaignFields[2].Descriptor()
	// campaign.NameValidator is a validator for the "name" field. It is called by the builders before save.
	campaign.NameValidator = campaignDescName.Validators[0].(func(string) error)
	// campaignDescMessageIntervalSeconds is the schema descriptor for message_interval_seconds field.
	campaignDescMessageIntervalSeconds := campaignFields[8].Descriptor()
	// campaign.DefaultMessageIntervalSeconds holds the default value on creation for the message_interval_seconds field.
	campaign.DefaultMessageIntervalSeconds = campaignDescMessageIntervalSeconds.Default.(int)
	// campaignDescCreatedAt is the schema descriptor for created_at field.
	campaignDescCreatedAt := campaignFields[10].Descriptor()
	// campaign.DefaultCreatedAt holds the default value on creation for the created_at field.
	campaign.DefaultCreatedAt = campaignDescCreatedAt.Default.(func() time.Time)
	// campaignDescUpdatedAt is the schema descriptor for updated_at field.
	campaignDescUpdatedAt := campaignFields[11].Descriptor()
	// campaign.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	campaign.DefaultUpdatedAt = campaignDescUpdatedAt.Default.(func() time.Time)
	// campaign.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	campaign.UpdateDefaultUpdatedAt = campaignDescUpdatedAt.UpdateDefault.(func() time.Time)
	campaignstepFields := schema.CampaignStep{}.Fields()
	_ = campaignstepFields
	// campaignstepDescStepOrder is the schema descriptor for step_order field.
	campaignstepDescStepOrder := campaignstepFields[3].Descriptor()
	// campaignstep.StepOrderValidator is a validator for the "step_order" field. It is called by the builders before save.
	campaignstep.StepOrderValidator = campaignstepDescStepOrder.Validators[0].(func(int) error)
	// campaignstepDescDelayDays is the schema descriptor for delay_days field.
	campaignstepDescDelayDays := campaignstepFields[7].Descriptor()
	// campaignstep.DefaultDelayDays holds the default value on creation for the delay_days field.
	campaignstep.DefaultDelayDays = campaignstepDescDelayDays.Default.(int)
	// campaignstepDescDelayHours is the schema descriptor for delay_hours field.
	campaignstepDescDelayHours := campaignstepFields[8].Descriptor()
	// campaignstep.DefaultDelayHours holds the default value on creation for the delay_hours field.
	campaignstep.DefaultDelayHours = campaignstepDescDelayHours.Default.(int)
	// campaignstepDescDelayMinutes is the schema descriptor for delay_minutes field.
	campaignstepDescDelayMinutes := campaignstepFields[9].Descriptor()
	// campaignstep.DefaultDelayMinutes holds the default value on creation for the delay_minutes field.
	campaignstep.DefaultDelayMinutes = campaignstepDescDelayMinutes.Default.(int)
	channelconfigFields := schema.ChannelConfig{}.Fields()
	_ = channelconfigFields
	// channelconfigDescName is the schema descriptor for name field.
	channelconfigDescName := channelconfigFields[3].Descriptor()
	// channelconfig.NameValidator is a validator for the "name" field. It is called by the builders before save.
	channelconfig.NameValidator = channelconfigDescName.Validators[0].(func(string) error)
	// channelconfigDescActive is the schema descriptor for active field.
	channelconfigDescActive := channelconfigFields[4].Descriptor()
	// channelconfig.DefaultActive holds the default value on creation for the active field.
	channelconfig.DefaultActive = channelconfigDescActive.Default.(bool)
	// channelconfigDescIsDefault is the schema descriptor for is_default field.
	channelconfigDescIsDefault := channelconfigFields[5].Descriptor()
	// channelconfig.DefaultIsDefault holds the default value on creation for the is_default field.
	channelconfig.DefaultIsDefault = channelconfigDescIsDefault.Default.(bool)
	// channelconfigDescCreatedAt is the schema descriptor for created_at field.
	channelconfigDescCreatedAt := channelconfigFields[9].Descriptor()
	// channelconfig.DefaultCreatedAt holds the default value on creation for the created_at field.
	channelconfig.DefaultCreatedAt = channelconfigDescCreatedAt.Default.(func() time.Time)
	// channelconfigDescUpdatedAt is the schema descriptor for updated_at field.
	channelconfigDescUpdatedAt := channelconfigFields[10].Descriptor()
	// channelconfig.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	channelconfig.DefaultUpdatedAt = channelconfigDescUpdatedAt.Default.(func() time.Time)
	// channelconfig.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	channelconfig.UpdateDefaultUpdatedAt = channelconfigDescUpdatedAt.UpdateDefault.(func() time.Time)
	contactFields := schema.Contact{}.Fields()
	_ = contactFields
	// contactDescIsPrimary is the schema descriptor for is_primary field.
	contactDescIsPrimary := contactFields[7].Descriptor()
	// contact.DefaultIsPrimary holds the default value on creation for the is_primary field.
	contact.DefaultIsPrimary = contactDescIsPrimary.Default.(bool)
	// contactDescUnsubscribed is the schema descriptor for unsubscribed field.
	contactDescUnsubscribed := contactFields[8].Descriptor()
	// contact.DefaultUnsubscribed holds the default value on creation for the unsubscribed field.
	contact.DefaultUnsubscribed = contactDescUnsubscribed.Default.(bool)
	// contactDescCreatedAt is the schema descriptor for created_at field.
	contactDescCreatedAt := contactFields[9].Descriptor()
	// contact.DefaultCreatedAt holds the default value on creation for the created_at field.
	contact.DefaultCreatedAt = contactDescCreatedAt.Default.(func() time.Time)
	contactattemptFields := schema.ContactAttempt{}.Fields()
	_ = contactattemptFields
	// contactattemptDescCreatedAt is the schema descriptor for created_at field.
	contactattemptDescCreatedAt := contactattemptFields[21].Descriptor()
	// contactattempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	contactattempt.DefaultCreatedAt = contactattemptDescCreatedAt.Default.(func() time.Time)
	conversationFields := schema.Conversation{}.Fields()
	_ = conversationFields
	// conversationDescCreatedAt is the schema descriptor for created_at field.
	conversationDescCreatedAt := conversationFields[9].Descriptor()
	// conversation.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversation.DefaultCreatedAt = conversationDescCreatedAt.Default.(func() time.Time)
	// conversationDescUpdatedAt is the schema descriptor for updated_at field.
	conversationDescUpdatedAt := conversationFields[10].Descriptor()
	// conversation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	conversation.DefaultUpdatedAt = conversationDescUpdatedAt.Default.(func() time.Time)
	// conversation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	conversation.UpdateDefaultUpdatedAt = conversationDescUpdatedAt.UpdateDefault.(func() time.Time)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescPriority is the schema descriptor for priority field.
	jobDescPriority := jobFields[4].Descriptor()
	// job.DefaultPriority holds the default value on creation for the priority field.
	job.DefaultPriority = jobDescPriority.Default.(int)
	// jobDescAttempts is the schema descriptor for attempts field.
	jobDescAttempts := jobFields[6].Descriptor()
	// job.DefaultAttempts holds the default value on creation for the attempts field.
	job.DefaultAttempts = jobDescAttempts.Default.(int)
	// jobDescMaxAttempts is the schema descriptor for max_attempts field.
	jobDescMaxAttempts := jobFields[7].Descriptor()
	// job.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	job.DefaultMaxAttempts = jobDescMaxAttempts.Default.(int)
	// jobDescRunAfter is the schema descriptor for run_after field.
	jobDescRunAfter := jobFields[8].Descriptor()
	// job.DefaultRunAfter holds the default value on creation for the run_after field.
	job.DefaultRunAfter = jobDescRunAfter.Default.(func() time.Time)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[14].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	leadFields := schema.Lead{}.Fields()
	_ = leadFields
	// leadDescCreatedAt is the schema descriptor for created_at field.
	leadDescCreatedAt := leadFields[6].Descriptor()
	// lead.DefaultCreatedAt holds the default value on creation for the created_at field.
	lead.DefaultCreatedAt = leadDescCreatedAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[6].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	prospectFields := schema.Prospect{}.Fields()
	_ = prospectFields
	// prospectDescCreatedAt is the schema descriptor for created_at field.
	prospectDescCreatedAt := prospectFields[13].Descriptor()
	// prospect.DefaultCreatedAt holds the default value on creation for the created_at field.
	prospect.DefaultCreatedAt = prospectDescCreatedAt.Default.(func() time.Time)
	// prospectDescUpdatedAt is the schema descriptor for updated_at field.
	prospectDescUpdatedAt := prospectFields[14].Descriptor()
	// prospect.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	prospect.DefaultUpdatedAt = prospectDescUpdatedAt.Default.(func() time.Time)
	// prospect.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	prospect.UpdateDefaultUpdatedAt = prospectDescUpdatedAt.UpdateDefault.(func() time.Time)
	prospectgroupFields := schema.ProspectGroup{}.Fields()
	_ = prospectgroupFields
	// prospectgroupDescMemberCount is the schema descriptor for member_count field.
	prospectgroupDescMemberCount := prospectgroupFields[5].Descriptor()
	// prospectgroup.DefaultMemberCount holds the default value on creation for the member_count field.
	prospectgroup.DefaultMemberCount = prospectgroupDescMemberCount.Default.(int)
	// prospectgroupDescImportedAt is the schema descriptor for imported_at field.
	prospectgroupDescImportedAt := prospectgroupFields[6].Descriptor()
	// prospectgroup.DefaultImportedAt holds the default value on creation for the imported_at field.
	prospectgroup.DefaultImportedAt = prospectgroupDescImportedAt.Default.(func() time.Time)
	// prospectgroupDescCreatedAt is the schema descriptor for created_at field.
	prospectgroupDescCreatedAt := prospectgroupFields[7].Descriptor()
	// prospectgroup.DefaultCreatedAt holds the default value on creation for the created_at field.
	prospectgroup.DefaultCreatedAt = prospectgroupDescCreatedAt.Default.(func() time.Time)
	recipientFields := schema.Recipient{}.Fields()
	_ = recipientFields
	// recipientDescCurrentStep is the schema descriptor for current_step field.
	recipientDescCurrentStep := recipientFields[7].Descriptor()
	// recipient.DefaultCurrentStep holds the default value on creation for the current_step field.
	recipient.DefaultCurrentStep = recipientDescCurrentStep.Default.(int)
	// recipientDescCreatedAt is the schema descriptor for created_at field.
	recipientDescCreatedAt := recipientFields[10].Descriptor()
	// recipient.DefaultCreatedAt holds the default value on creation for the created_at field.
	recipient.DefaultCreatedAt = recipientDescCreatedAt.Default.(func() time.Time)
	// recipientDescUpdatedAt is the schema descriptor for updated_at field.
	recipientDescUpdatedAt := recipientFields[11].Descriptor()
	// recipient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	recipient.DefaultUpdatedAt = recipientDescUpdatedAt.Default.(func() time.Time)
	// recipient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	recipient.UpdateDefaultUpdatedAt = recipientDescUpdatedAt.UpdateDefault.(func() time.Time)
	templateFields := schema.Template{}.Fields()
	_ = templateFields
	// templateDescName is the schema descriptor for name field.
	templateDescName := templateFields[3].Descriptor()
	// template.NameValidator is a validator for the "name" field. It is called by the builders before save.
	template.NameValidator = templateDescName.Validators[0].(func(string) error)
	// templateDescUseAi is the schema descriptor for use_ai field.
	templateDescUseAi := templateFields[6].Descriptor()
	// template.DefaultUseAi holds the default value on creation for the use_ai field.
	template.DefaultUseAi = templateDescUseAi.Default.(bool)
	// templateDescCreatedAt is the schema descriptor for created_at field.
	templateDescCreatedAt := templateFields[8].Descriptor()
	// template.DefaultCreatedAt holds the default value on creation for the created_at field.
	template.DefaultCreatedAt = templateDescCreatedAt.Default.(func() time.Time)
	tenantFields := schema.Tenant{}.Fields()
	_ = tenantFields
	// tenantDescName is the schema descriptor for name field.
	tenantDescName := tenantFields[1].Descriptor()
	// tenant.NameValidator is a validator for the "name" field. It is called by the builders before save.
	tenant.NameValidator = tenantDescName.Validators[0].(func(string) error)
	// tenantDescCreatedAt is the schema descriptor for created_at field.
	tenantDescCreatedAt := tenantFields[2].Descriptor()
	// tenant.DefaultCreatedAt holds the default value on creation for the created_at field.
	tenant.DefaultCreatedAt = tenantDescCreatedAt.Default.(func() time.Time)
}
