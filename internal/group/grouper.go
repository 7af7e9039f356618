// Package group clusters transactions by merchant signature for bulk
// categorization. Groupings are computed fresh on every call since
// membership depends on the current, possibly filtered, queue.
package group

import (
	"github.com/mhollis/sift/internal/model"
	"github.com/mhollis/sift/internal/normalize"
)

// Group is one merchant cluster: the shared signature and its members in
// their original queue order.
type Group struct {
	Key          string
	Transactions []model.Transaction
}

// ByKey partitions transactions by group key. Relative order is preserved
// within each group, and groups appear in order of their first member.
func ByKey(transactions []model.Transaction) []Group {
	index := make(map[string]int)
	var groups []Group

	for _, tx := range transactions {
		key := normalize.GroupKey(tx)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key})
		}
		groups[i].Transactions = append(groups[i].Transactions, tx)
	}

	return groups
}

// MembersFrom returns the members of the pivot's group from the pivot's
// position onward, pivot included. Earlier queue entries are deliberately
// excluded: the workflow consumes the queue front to back, so bulk actions
// apply only to not-yet-seen duplicates. Returns nil when the pivot is not
// in the queue.
func MembersFrom(pivot model.Transaction, queue []model.Transaction) []model.Transaction {
	start := -1
	for i, tx := range queue {
		if tx.ID == pivot.ID {
			start = i
			break
		}
	}
	if start < 0 {
		return nil
	}

	key := normalize.GroupKey(pivot)
	var members []model.Transaction
	for _, tx := range queue[start:] {
		if normalize.GroupKey(tx) == key {
			members = append(members, tx)
		}
	}
	return members
}

// Description is a deduplicated description: the normalized form used as the
// dedupe key and the first-seen label with its original casing.
type Description struct {
	Key   string
	Label string
}

// UniqueDescriptions deduplicates transactions by normalized description,
// preserving first-seen order and first-seen casing. This keys on the exact
// description rather than the coarser group signature, for pickers that
// bulk-assign by description.
func UniqueDescriptions(transactions []model.Transaction) []Description {
	seen := make(map[string]struct{})
	var out []Description

	for _, tx := range transactions {
		label := normalize.DisplayDescription(tx)
		key := normalize.Normalize(label)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, Description{Key: key, Label: label})
	}

	return out
}
