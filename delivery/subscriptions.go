package delivery

import (
	"fmt"

	datastream "github.com/ministryofjustice/cloud-platform-firehose-data-stream"
	"github.com/ministryofjustice/cloud-platform-firehose-data-stream/internal/naming"
	"github.com/ministryofjustice/cloud-platform-firehose-data-stream/resources/logs"
)

// subscriptionRecords maps the configured log-group list onto subscription
// filters, one record per entry in caller order. The mapping is pure
// fan-out: every filter differs only in its group.
//
// Logical IDs derive from the sanitized group name. Sanitizing can
// collide ("app-1" and "app_1" both become App1), so a taken ID falls back
// to the list position, which is unique by construction.
func (p *Pipeline) subscriptionRecords() []datastream.Record {
	records := make([]datastream.Record, 0, len(p.cfg.LogGroupNames))
	used := make(map[string]bool, len(p.cfg.LogGroupNames))

	for i, group := range p.cfg.LogGroupNames {
		base := subscriptionIDPrefix + naming.LogicalID(group)
		id := base
		for n := i; used[id]; n++ {
			id = fmt.Sprintf("%s%d", base, n)
		}
		used[id] = true

		filter := logs.SubscriptionFilter{
			DestinationArn: datastream.AttrRef{Resource: streamID, Attribute: "Arn"},
			FilterName:     p.names.Filter(group),
			FilterPattern:  p.cfg.FilterPattern,
			LogGroupName:   group,
			RoleArn:        datastream.AttrRef{Resource: subscriptionRoleID, Attribute: "Arn"},
		}

		// CloudWatch Logs checks the firehose:Put* grant when the filter
		// is created, so the policy must already be bound to the role.
		records = append(records, datastream.Record{
			Name:      id,
			Resource:  filter,
			DependsOn: []string{subscriptionPolicyID},
		})
	}
	return records
}
