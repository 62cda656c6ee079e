package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizza_manager/model"
	"pizza_manager/utils"
)

func TestGroupTablesByZone(t *testing.T) {
	zones := []model.Zone{
		{ID: "z1", Name: "Tầng trệt"},
		{ID: "z2", Name: "Sân vườn"},
	}
	tables := []model.Table{
		{ID: "t1", Code: "B02", ZoneId: "z1", Status: model.TableClosing, Capacity: 4},
		{ID: "t2", Code: "B01", ZoneId: "z1", Status: model.TableOpening, Capacity: 2},
		{ID: "t3", Code: "V01", ZoneId: "z2", Status: model.TableClosing, Capacity: 6},
	}

	groups := GroupTablesByZone(tables, zones)
	require.Len(t, groups, 2)

	// sắp theo tên khu vực
	assert.Equal(t, "Sân vườn", groups[0].Name)
	assert.Equal(t, "Tầng trệt", groups[1].Name)

	ground := groups[1]
	assert.Equal(t, 2, ground.MemberCount)
	assert.Equal(t, 6, ground.AggregateCapacity)
	// thành viên sắp theo mã bàn
	assert.Equal(t, "B01", ground.Tables[0].Table.Code)
	assert.Equal(t, "B02", ground.Tables[1].Table.Code)
}

func TestGroupTablesByZoneUnresolvedZoneKeepsTables(t *testing.T) {
	tables := []model.Table{
		{ID: "t1", Code: "X01", ZoneId: "z-đã-xóa", Status: model.TableClosing, Capacity: 4},
	}

	groups := GroupTablesByZone(tables, nil)
	require.Len(t, groups, 1)
	assert.Equal(t, "Khu vực không xác định", groups[0].Name)
	assert.Equal(t, 1, groups[0].MemberCount)
}

func TestGroupTablesByMergeSumsCapacity(t *testing.T) {
	mergeId := "m1"
	mergeName := "Tiệc công ty"
	tables := []model.Table{
		{ID: "t1", Code: "B01", Status: model.TableOpening, Capacity: 4, TableMergeId: &mergeId, TableMergeName: &mergeName},
		{ID: "t2", Code: "B02", Status: model.TableOpening, Capacity: 2, TableMergeId: &mergeId, TableMergeName: &mergeName},
		{ID: "t3", Code: "B03", Status: model.TableOpening, Capacity: 6, TableMergeId: &mergeId, TableMergeName: &mergeName},
		{ID: "t4", Code: "B04", Status: model.TableClosing, Capacity: 8}, // không ghép, không vào nhóm
	}

	groups := GroupTablesByMerge(tables)
	require.Len(t, groups, 1)
	assert.Equal(t, "Tiệc công ty", groups[0].Name)
	assert.Equal(t, 3, groups[0].MemberCount)
	assert.Equal(t, 12, groups[0].AggregateCapacity)
}

func TestGroupTablesByMergeNameFallback(t *testing.T) {
	tables := []model.Table{
		{ID: "t1", Code: "B01", Status: model.TableOpening, Capacity: 4, TableMergeId: utils.StringPtr("m1")},
		{ID: "t2", Code: "B02", Status: model.TableOpening, Capacity: 2, TableMergeId: utils.StringPtr("m1")},
	}

	groups := GroupTablesByMerge(tables)
	require.Len(t, groups, 1)
	assert.Equal(t, "Nhóm không tên", groups[0].Name)
}
