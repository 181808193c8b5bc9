package schedule

const (
	StatusNotStarted = "未開始"
	StatusPreparing  = "準備中"
	StatusVerifying  = "驗證中"
	StatusDone       = "已完成"
)

// StandardStatuses lists the normalised statuses in progress order
var StandardStatuses = []string{StatusNotStarted, StatusPreparing, StatusVerifying, StatusDone}

var statusAliases = map[string]string{
	"待開始": StatusNotStarted,
	"未指定": StatusNotStarted,
	"規劃中": StatusNotStarted,

	"進行中":      StatusPreparing,
	"前置準備中":    StatusPreparing,
	"IT前置準備中":  StatusPreparing,

	"測試中":        StatusVerifying,
	"測試進行中":      StatusVerifying,
	"User測試進行中": StatusVerifying,

	"完成":  StatusDone,
	"已驗證": StatusDone,
}

// NormalizeStatus folds free-form status text onto one of StandardStatuses.
// Unknown or empty text is treated as not started.
func NormalizeStatus(status string) string {
	if mapped, ok := statusAliases[status]; ok {
		return mapped
	}
	for _, s := range StandardStatuses {
		if s == status {
			return s
		}
	}
	return StatusNotStarted
}

// StatusRank orders normalised statuses; unknown values rank first
func StatusRank(status string) int {
	for i, s := range StandardStatuses {
		if s == status {
			return i + 1
		}
	}
	return 0
}
