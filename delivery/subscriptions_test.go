package delivery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	datastream "github.com/ministryofjustice/cloud-platform-firehose-data-stream"
	"github.com/ministryofjustice/cloud-platform-firehose-data-stream/resources/logs"
)

func subscriptionFilters(tmpl *datastream.Template) map[string]datastream.ResourceDef {
	filters := make(map[string]datastream.ResourceDef)
	for id, def := range tmpl.Resources {
		if def.Type == "AWS::Logs::SubscriptionFilter" {
			filters[id] = def
		}
	}
	return filters
}

// N configured groups produce exactly N filters, each wired to the stream
// and the subscription role, each naming its own group.
func TestSubscriptionFanOut(t *testing.T) {
	cfg := s3Config()
	cfg.LogGroupNames = []string{"app-logs", "/aws/eks/audit", "batch_jobs"}
	tmpl := buildTemplate(t, cfg)

	filters := subscriptionFilters(tmpl)
	require.Len(t, filters, 3)

	groups := make(map[string]bool)
	names := make(map[string]bool)
	for id, def := range filters {
		props := def.Properties
		assert.Equal(t, getAtt("LogDeliveryStream", "Arn"), props["DestinationArn"], "filter %s", id)
		assert.Equal(t, getAtt("SubscriptionRole", "Arn"), props["RoleArn"], "filter %s", id)
		assert.Contains(t, def.DependsOn, "SubscriptionPolicy", "filter %s", id)

		group := props["LogGroupName"].(string)
		assert.False(t, groups[group], "group %s subscribed twice", group)
		groups[group] = true

		name := props["FilterName"].(string)
		assert.False(t, names[name], "filter name %s reused", name)
		names[name] = true
	}

	for _, group := range cfg.LogGroupNames {
		assert.True(t, groups[group], "group %s has no filter", group)
	}
}

// An empty filter pattern means match everything: CloudWatch Logs requires
// the property, so it must serialize even when empty.
func TestSubscriptionFilterPattern_EmptyPresent(t *testing.T) {
	cfg := s3Config()
	cfg.FilterPattern = ""
	tmpl := buildTemplate(t, cfg)

	for id, def := range subscriptionFilters(tmpl) {
		require.Contains(t, def.Properties, "FilterPattern", "filter %s", id)
		assert.Equal(t, "", def.Properties["FilterPattern"], "filter %s", id)
	}
}

func TestSubscriptionFilterPattern_Propagated(t *testing.T) {
	cfg := s3Config()
	cfg.FilterPattern = `{ $.level = "ERROR" }`
	tmpl := buildTemplate(t, cfg)

	filters := subscriptionFilters(tmpl)
	require.NotEmpty(t, filters)
	for id, def := range filters {
		assert.Equal(t, cfg.FilterPattern, def.Properties["FilterPattern"], "filter %s", id)
	}
}

// Different group names can sanitize to the same logical ID; the list
// position disambiguates deterministically.
func TestSubscriptionLogicalIDCollisions(t *testing.T) {
	cfg := s3Config()
	cfg.LogGroupNames = []string{"app-1", "app_1", "app 1"}
	pipe, err := New(cfg)
	require.NoError(t, err)

	var ids []string
	for _, rec := range pipe.Records() {
		if rec.Resource.ResourceType() == "AWS::Logs::SubscriptionFilter" {
			ids = append(ids, rec.Name)
		}
	}
	assert.Equal(t, []string{"SubscriptionApp1", "SubscriptionApp11", "SubscriptionApp12"}, ids)
}

func TestSubscriptionLogicalIDCollisions_Chained(t *testing.T) {
	// "app_1" sanitizes to App1, which is taken; position 2 would give
	// App12, but that is taken by the literal group app-12.
	cfg := s3Config()
	cfg.LogGroupNames = []string{"app-1", "app-12", "app_1"}
	pipe, err := New(cfg)
	require.NoError(t, err)

	var ids []string
	for _, rec := range pipe.Records() {
		if rec.Resource.ResourceType() == "AWS::Logs::SubscriptionFilter" {
			ids = append(ids, rec.Name)
		}
	}
	assert.Equal(t, []string{"SubscriptionApp1", "SubscriptionApp12", "SubscriptionApp13"}, ids)
}

func TestSubscriptionFilterNamesEmbedGroup(t *testing.T) {
	cfg := s3Config()
	cfg.LogGroupNames = []string{"/aws/eks/audit"}
	pipe, err := New(cfg)
	require.NoError(t, err)

	assert.Equal(t, "audit-/aws/eks/audit-"+pinnedSuffix, pipe.Names().Filter("/aws/eks/audit"))
}

// Whatever the group list, the fan-out is one filter per group with unique
// logical IDs and every group covered.
func TestSubscriptionFanOutProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		groups := rapid.SliceOfNDistinct(
			rapid.StringMatching(`[a-zA-Z0-9][a-zA-Z0-9/_.-]{0,40}`),
			1, 12, rapid.ID[string]).Draw(t, "groups")

		cfg := s3Config()
		cfg.LogGroupNames = groups
		pipe, err := New(cfg)
		if err != nil {
			t.Fatalf("New: %v", err)
		}

		seen := make(map[string]bool)
		covered := make(map[string]bool)
		count := 0
		for _, rec := range pipe.Records() {
			filter, ok := rec.Resource.(logs.SubscriptionFilter)
			if !ok {
				continue
			}
			count++
			if seen[rec.Name] {
				t.Fatalf("logical ID %s assigned twice", rec.Name)
			}
			seen[rec.Name] = true

			group, ok := filter.LogGroupName.(string)
			if !ok {
				t.Fatalf("filter %s has non-string group %T", rec.Name, filter.LogGroupName)
			}
			covered[group] = true
		}
		if count != len(groups) {
			t.Fatalf("%d groups produced %d filters", len(groups), count)
		}
		for _, group := range groups {
			if !covered[group] {
				t.Fatalf("group %q has no filter", group)
			}
		}
	})
}
