package utils

func IntPtr(i int) *int {
	return &i
}

func Int64Ptr(i int64) *int64 {
	return &i
}

func StringPtr(s string) *string {
	return &s
}

func PtrInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}

func PtrString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
