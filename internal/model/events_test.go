package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNoticeDuration(t *testing.T) {
	assert.Equal(t, time.Second, NoticeShort.AsDuration())
	assert.Equal(t, 2*time.Second, NoticeLong.AsDuration())
}
