package helper

import (
	"sort"

	"pizza_manager/constants"
	"pizza_manager/model"
)

type TableGroup struct {
	Key               string      `json:"key"`
	Name              string      `json:"name"`
	MemberCount       int         `json:"memberCount"`
	AggregateCapacity int         `json:"aggregateCapacity"`
	Tables            []TableView `json:"tables"`
}

// GroupTablesByZone chia bàn theo khu vực. Khu vực không resolve được
// vẫn hiển thị với tên placeholder, không được rơi bàn.
func GroupTablesByZone(tables []model.Table, zones []model.Zone) []TableGroup {
	zoneNames := make(map[string]string, len(zones))
	for _, z := range zones {
		zoneNames[z.ID] = z.Name
	}

	byZone := make(map[string][]model.Table)
	for _, t := range tables {
		byZone[t.ZoneId] = append(byZone[t.ZoneId], t)
	}

	groups := make([]TableGroup, 0, len(byZone))
	for zoneId, members := range byZone {
		name, ok := zoneNames[zoneId]
		if !ok || name == "" {
			name = constants.DISPLAY_UNKNOWN_ZONE
		}
		groups = append(groups, buildGroup(zoneId, name, members))
	}

	sortGroups(groups)
	return groups
}

// GroupTablesByMerge chia bàn theo nhóm ghép. Chỉ bàn đang ghép mới vào
// nhóm; sức chứa nhóm là tổng sức chứa các bàn thành viên.
func GroupTablesByMerge(tables []model.Table) []TableGroup {
	byMerge := make(map[string][]model.Table)
	mergeNames := make(map[string]string)
	for _, t := range tables {
		if !t.IsMerged() {
			continue
		}
		id := *t.TableMergeId
		byMerge[id] = append(byMerge[id], t)
		if t.TableMergeName != nil && *t.TableMergeName != "" {
			mergeNames[id] = *t.TableMergeName
		}
	}

	groups := make([]TableGroup, 0, len(byMerge))
	for mergeId, members := range byMerge {
		name, ok := mergeNames[mergeId]
		if !ok {
			name = constants.DISPLAY_UNNAMED_GROUP
		}
		groups = append(groups, buildGroup(mergeId, name, members))
	}

	sortGroups(groups)
	return groups
}

func buildGroup(key, name string, members []model.Table) TableGroup {
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].Code < members[j].Code
	})

	group := TableGroup{
		Key:         key,
		Name:        name,
		MemberCount: len(members),
	}
	for _, t := range members {
		group.AggregateCapacity += t.Capacity
		group.Tables = append(group.Tables, ClassifyTable(t))
	}
	return group
}

// Nhóm sắp theo tên rồi tới key để kết quả ổn định giữa hai lần render
func sortGroups(groups []TableGroup) {
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].Name != groups[j].Name {
			return groups[i].Name < groups[j].Name
		}
		return groups[i].Key < groups[j].Key
	})
}
