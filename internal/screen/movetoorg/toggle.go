// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package movetoorg

import "slices"

// toggleCollection flips the selection of collectionID inside organization
// orgID. Only the touched organization and its collection slice are copied;
// all other organizations are returned as they were.
//
// When the organization or the collection is unknown, orgs is returned
// unchanged and ok is false.
func toggleCollection(orgs []Organization, orgID, collectionID string) (out []Organization, ok bool) {
	oi := slices.IndexFunc(orgs, func(o Organization) bool { return o.ID == orgID })
	if oi < 0 {
		return orgs, false
	}
	ci := slices.IndexFunc(orgs[oi].Collections, func(c Collection) bool { return c.ID == collectionID })
	if ci < 0 {
		return orgs, false
	}

	cols := slices.Clone(orgs[oi].Collections)
	cols[ci].IsSelected = !cols[ci].IsSelected

	out = slices.Clone(orgs)
	out[oi].Collections = cols
	return out, true
}
