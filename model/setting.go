package model

type Setting struct {
	ID         string `json:"id"`
	ConfigType string `json:"configType"`
	Key        string `json:"key"`
	Value      string `json:"value"`
}

type UpdateSettingInput struct {
	ID         string `json:"id" validate:"required"`
	ConfigType string `json:"configType" validate:"required"`
	Key        string `json:"key" validate:"required"`
	Value      string `json:"value" validate:"required"`
}

// Backend nhận configType dạng số, key chưa biết gửi 0
var configTypeCodes = map[string]int{
	"TIME":    1,
	"PAYMENT": 2,
	"EMAIL":   3,
	"GENERAL": 4,
}

func ConfigTypeCode(configType string) int {
	return configTypeCodes[configType]
}
