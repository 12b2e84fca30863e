package naturalsort

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortColorNames(t *testing.T) {
	t.Run("성공 - 자연 정렬 오름차순", func(t *testing.T) {
		names := []string{"AB00001", "0000002", "ZZ99999", "AA00001", "0000001", "AA00002"}
		SortColorNames(names, false)
		assert.Equal(t,
			[]string{"0000001", "0000002", "AA00001", "AA00002", "AB00001", "ZZ99999"},
			names)
	})

	t.Run("성공 - 내림차순 뒤집기", func(t *testing.T) {
		names := []string{"AA00001", "0000001", "ZZ99999"}
		SortColorNames(names, true)
		assert.Equal(t, []string{"ZZ99999", "AA00001", "0000001"}, names)
	})

	t.Run("성공 - 빈 이름이 가장 앞", func(t *testing.T) {
		names := []string{"A1", "", "1"}
		SortColorNames(names, false)
		assert.Equal(t, []string{"", "1", "A1"}, names)
	})

	t.Run("성공 - 한 글자 접두사는 두 글자보다 앞", func(t *testing.T) {
		assert.True(t, Less("A1", "AA1"))
		assert.True(t, Less("Z9", "AA1"))
	})

	t.Run("성공 - 숫자는 자릿수가 아닌 값으로 비교", func(t *testing.T) {
		assert.True(t, Less("2", "0000010"))
		assert.True(t, Less("A2", "A10"))
	})

	t.Run("성공 - 패턴 밖 텍스트는 마지막", func(t *testing.T) {
		names := []string{"misty rose", "A1", "3"}
		SortColorNames(names, false)
		assert.Equal(t, []string{"3", "A1", "misty rose"}, names)
	})

	t.Run("성공 - 멀티바이트 접두사도 글자 단위로 자른다", func(t *testing.T) {
		// "브라운2"는 한글 접두사 + 숫자로 파싱되어 숫자 값으로 비교된다
		assert.True(t, Less("브라운2", "브라운10"))
		assert.True(t, Less("A1", "브라운2"))
	})
}
