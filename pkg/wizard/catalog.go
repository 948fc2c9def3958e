package wizard

// Choice lists offered by front ends for the optional fields. The values are
// suggestions only; any string is accepted.
var (
	CategoryOptions    = []string{"软件开发", "硬件开发", "系统集成", "技术咨询", "其他"}
	BudgetOptions      = []string{"5万以下", "5-20万", "20-50万", "50万以上", "面议"}
	TimelineOptions    = []string{"1个月内", "1-3个月", "3-6个月", "6个月以上"}
	CooperationOptions = []string{"项目外包", "技术合作", "联合研发", "其他"}
)
