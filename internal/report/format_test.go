package report

import "testing"

func TestColumnFormat(t *testing.T) {
	tests := []struct {
		col  Column
		v    any
		want string
	}{
		{Column{"Year", KindText}, "Year 3", "Year 3"},
		{Column{"Total Students", KindInteger}, 1500, "1,500"},
		{Column{"Total Revenue", KindMoney}, 10916982.0, "10,916,982.00"},
		{Column{"Net Profit", KindMoney}, -1250.5, "-1,250.50"},
		{Column{"ROI (%)", KindPercent}, 38.19, "38.19%"},
		{Column{"Inflation Rate", KindRate}, 0.0521, "5.21%"},
		{Column{"Empty", KindMoney}, nil, ""},
	}

	for _, tt := range tests {
		if got := tt.col.Format(tt.v); got != tt.want {
			t.Errorf("%s.Format(%v) = %q, want %q", tt.col.Name, tt.v, got, tt.want)
		}
	}
}
