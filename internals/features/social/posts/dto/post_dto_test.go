// file: internals/features/social/posts/dto/post_dto_test.go
package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	usermodel "jinaq_backend/internals/features/users/user/model"
)

func TestExtractHashtags(t *testing.T) {
	tags := ExtractHashtags("Belajar #Golang dan #fiber, lalu #golang lagi")
	assert.Equal(t, []string{"golang", "fiber"}, []string(tags))
}

func TestExtractHashtags_Empty(t *testing.T) {
	tags := ExtractHashtags("tanpa tagar sama sekali")
	assert.NotNil(t, tags)
	assert.Empty(t, tags)
}

func TestExtractMentions(t *testing.T) {
	mentions := ExtractMentions("cc @Sinta dan @budi_99, terima kasih @sinta")
	assert.Equal(t, []string{"sinta", "budi_99"}, []string(mentions))
}

func TestAuthorFromUser(t *testing.T) {
	u := &usermodel.UserModel{
		UserFirstName: "Sinta",
		UserLastName:  "Dewi",
	}
	author := AuthorFromUser(u)
	assert.Equal(t, "Sinta Dewi", author.Name)

	assert.Equal(t, "Unknown", AuthorFromUser(nil).Name)
}
