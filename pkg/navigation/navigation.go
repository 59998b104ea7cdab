// Package navigation holds the static sidebar menu of the web console.
package navigation

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

const messageIDPrefix = "menu."

type ListItem struct {
	ID       string     `json:"id"`
	Label    string     `json:"label"`
	Link     string     `json:"link"`
	Children []ListItem `json:"children,omitempty"`
}

var StorageTabs = []ListItem{
	{ID: "storage/info", Label: "내 스토리지 현황", Link: "/storage/info"},
	{ID: "storage", Label: "파일 보관함", Link: "/storage"},
	{ID: "storage/views", Label: "미리보기", Link: "/storage/views"},
}

var UserPopupList = []ListItem{
	{ID: "mypage", Label: "프로필 관리", Link: "/mypage"},
	{ID: "subscribe", Label: "구독 관리", Link: "/mypage/subscribe"},
	{ID: "logout", Label: "로그아웃", Link: ""},
}

var MainList = []ListItem{
	{ID: "project", Label: "프로젝트", Link: "/project", Children: []ListItem{}},
	{ID: "storage", Label: "스토리지", Link: "", Children: StorageTabs},
	{ID: "mypage", Label: "설정", Link: "", Children: UserPopupList},
}

var SubList = []ListItem{
	{ID: "tech-blog", Label: "기술 블로그", Link: "https://tech.tensorcube.net", Children: []ListItem{}},
	{ID: "community", Label: "커뮤니티", Link: "", Children: []ListItem{}},
	{ID: "cs-center", Label: "고객센터", Link: "", Children: []ListItem{}},
}

type Menu struct {
	MainList []ListItem `json:"mainList"`
	SubList  []ListItem `json:"subList"`
}

// Localize returns a deep copy of items with labels translated by message id
// "menu.<id>" ("menu.<parent id>.<id>" for children, since ids repeat across
// levels). Items without a translation keep their constant label.
func Localize(items []ListItem, l *i18n.Localizer) []ListItem {
	return localize(items, l, messageIDPrefix)
}

func localize(items []ListItem, l *i18n.Localizer, prefix string) []ListItem {
	if items == nil {
		return nil
	}

	out := make([]ListItem, len(items))
	for i, item := range items {
		out[i] = item
		out[i].Label = translate(l, prefix+item.ID, item.Label)
		out[i].Children = localize(item.Children, l, prefix+item.ID+".")
	}

	return out
}

func LocalizedMenu(l *i18n.Localizer) Menu {
	return Menu{
		MainList: Localize(MainList, l),
		SubList:  Localize(SubList, l),
	}
}

func translate(l *i18n.Localizer, id, label string) string {
	if l == nil {
		return label
	}

	msg, err := l.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID:    id,
			Other: label,
		},
	})
	if err != nil || msg == "" {
		return label
	}

	return msg
}
