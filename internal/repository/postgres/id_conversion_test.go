package postgres

import "testing"

func TestStudentIDToInt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{
			name:    "valid ID with prefix",
			input:   "s1",
			want:    1,
			wantErr: false,
		},
		{
			name:    "valid ID without prefix",
			input:   "1",
			want:    1,
			wantErr: false,
		},
		{
			name:    "valid ID with large number",
			input:   "s12345",
			want:    12345,
			wantErr: false,
		},
		{
			name:    "invalid ID - non-numeric",
			input:   "sabc",
			want:    0,
			wantErr: true,
		},
		{
			name:    "invalid ID - empty string",
			input:   "",
			want:    0,
			wantErr: true,
		},
		{
			name:    "invalid ID - only prefix",
			input:   "s",
			want:    0,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := studentIDToInt(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("studentIDToInt() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("studentIDToInt() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompanyIDToInt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{
			name:    "valid ID with prefix",
			input:   "comp-3",
			want:    3,
			wantErr: false,
		},
		{
			name:    "valid ID without prefix",
			input:   "3",
			want:    3,
			wantErr: false,
		},
		{
			name:    "invalid ID - wrong prefix",
			input:   "grp-3",
			want:    0,
			wantErr: true,
		},
		{
			name:    "invalid ID - only prefix",
			input:   "comp-",
			want:    0,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := companyIDToInt(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("companyIDToInt() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("companyIDToInt() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIntToStringIDs(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "student", got: intToStudentID(7), want: "s7"},
		{name: "company", got: intToCompanyID(7), want: "comp-7"},
		{name: "group", got: intToGroupID(7), want: "grp-7"},
		{name: "member", got: intToMemberID(7), want: "inv-7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}
