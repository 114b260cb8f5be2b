package numeric_test

import (
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/agbru/numlist/internal/digitlist"
	"github.com/agbru/numlist/internal/numeric"
	"github.com/agbru/numlist/internal/numeric/mocks"
)

func TestRecorderObservesOperations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec := mocks.NewMockRecorder(ctrl)
	a, err := numeric.NewAdapter(3, 8, numeric.WithRecorder(rec))
	if err != nil {
		t.Fatalf("NewAdapter: %v", err)
	}

	gomock.InOrder(
		rec.EXPECT().Observe(numeric.OpParse, 3),
		rec.EXPECT().Observe(numeric.OpDecimal, 2),
		rec.EXPECT().Observe(numeric.OpConvert, 2),
		rec.EXPECT().Observe(numeric.OpParse, 2).Times(2),
		rec.EXPECT().Observe(numeric.OpOr, 2),
	)

	l := a.ParseDecimal("13")
	_ = a.ToDecimalString(l)
	_ = a.ChangeScale(l)
	_ = a.BitwiseOr(a.ParseDecimal("5"), a.ParseDecimal("3"))
}

func TestRecorderSkipsRejectedInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec := mocks.NewMockRecorder(ctrl)
	rec.EXPECT().Observe(gomock.Any(), gomock.Any()).Times(0)

	a, err := numeric.NewAdapter(3, 8, numeric.WithRecorder(rec))
	if err != nil {
		t.Fatalf("NewAdapter: %v", err)
	}
	_ = a.ParseDecimal("twelve")
	_ = a.ConvertBase(digitlist.NewWithDigits(3, 1), 40)
	_ = a.BitwiseOr(nil, digitlist.New(3))
	_ = a.ChangeScale(digitlist.New(3))
}
