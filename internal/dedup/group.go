package dedup

import (
	"github.com/ybdn/DoublonsIDPP/internal/signalisation"
)

// Group is an ordered set of records sharing one duplicate key. Members keep
// their first-seen input order; ID is assigned sequentially at discovery
// ("Groupe_1", "Groupe_2", ...) and is stable only within one run.
type Group struct {
	ID      string
	Key     signalisation.DuplicateKey
	Members []*signalisation.Record
}

// GroupResult splits the processing set into duplicate groups and
// singletons. Singletons keep their position relative to each other;
// groups appear in discovery order.
type GroupResult struct {
	Groups     []*Group
	Singletons []*signalisation.Record
}

// GroupRecords partitions records by exact equality of their normalized
// duplicate key. Only keys shared by two or more records become groups;
// everything else is a singleton. Given the same input the partition is
// reproducible: key discovery order and member order both follow the input
// sequence.
func GroupRecords(records []*signalisation.Record) GroupResult {
	byKey := make(map[signalisation.DuplicateKey][]*signalisation.Record, len(records))
	var keyOrder []signalisation.DuplicateKey
	for _, rec := range records {
		key := signalisation.KeyOf(rec)
		if _, seen := byKey[key]; !seen {
			keyOrder = append(keyOrder, key)
		}
		byKey[key] = append(byKey[key], rec)
	}

	res := GroupResult{}
	duplicateKeys := make(map[signalisation.DuplicateKey]struct{})
	for _, key := range keyOrder {
		if len(byKey[key]) < 2 {
			continue
		}
		duplicateKeys[key] = struct{}{}
		res.Groups = append(res.Groups, &Group{Key: key, Members: byKey[key]})
	}
	for _, rec := range records {
		if _, dup := duplicateKeys[signalisation.KeyOf(rec)]; !dup {
			res.Singletons = append(res.Singletons, rec)
		}
	}
	return res
}
