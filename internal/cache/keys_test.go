package cache

import "testing"

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "document",
			objectType:  "text",
			identifier:  "lecture.pdf",
			paramsKey:   nil,
			expectedKey: "studydeck:document:text:lecture.pdf",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "document",
			objectType:  "text",
			identifier:  "lecture.pdf",
			paramsKey:   []string{},
			expectedKey: "studydeck:document:text:lecture.pdf",
		},
		{
			name:        "with one paramsKey",
			serviceName: "quiz",
			objectType:  "list",
			identifier:  "user-1",
			paramsKey:   []string{"recent"},
			expectedKey: "studydeck:quiz:list:user-1:recent",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "dashboard",
			objectType:  "performance",
			identifier:  "user-1",
			paramsKey:   []string{"2026", "08", "5"},
			expectedKey: "studydeck:dashboard:performance:user-1:2026_08_5",
		},
		{
			name:        "with paramsKey containing special characters",
			serviceName: "document",
			objectType:  "text",
			identifier:  "notes",
			paramsKey:   []string{"chapter-1", "part_2"},
			expectedKey: "studydeck:document:text:notes:chapter-1_part_2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actualKey := GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...)
			if actualKey != tt.expectedKey {
				t.Errorf("GenerateCacheKey() = %v, want %v", actualKey, tt.expectedKey)
			}
		})
	}
}
