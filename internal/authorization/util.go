// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

const (
	ADMIN_RELATION  = "admin"
	MEMBER_RELATION = "member"

	CAN_VIEW_PERMISSION   = "can_view"
	CAN_INVITE_PERMISSION = "can_invite"
)

func UserTuple(userId string) string {
	return "user:" + userId
}

func OrganizationTuple(orgId string) string {
	return "organization:" + orgId
}
