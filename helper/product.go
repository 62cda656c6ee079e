package helper

import (
	"fmt"

	"github.com/gosimple/slug"

	"pizza_manager/model"
)

// ProductSlug sinh slug từ tên món, trùng trong danh sách hiện có thì
// thêm hậu tố số
func ProductSlug(name string, existing []model.ProductModel) string {
	base := slug.Make(name)
	result := base
	i := 1

	for {
		taken := false
		for _, p := range existing {
			if p.Slug == result {
				taken = true
				break
			}
		}
		if !taken {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}
