package database

import (
	"errors"
	"testing"

	"navsite/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func cardsOf(t *testing.T, store *Store, column string, id uint) []string {
	t.Helper()
	var titles []string
	require.NoError(t, store.DB().Model(&models.Card{}).Where(column+" = ?", id).Order("id").Pluck("title", &titles).Error)
	return titles
}

func TestSeedMenusIfEmpty_SkipsUnresolvedParents(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.InitializeSchema())

	menus := []MenuSeed{{Name: "Home", Order: 1}, {Name: "Tools", Order: 2}}
	subMenus := []SubMenuSeed{
		{ParentMenu: "Missing", Name: "ghost", Order: 1},
		{ParentMenu: "Tools", Name: "Dev", Order: 1},
	}
	cards := []CardSeed{
		{SubMenu: "ghost", Title: "lost", URL: "https://lost.example"},
		{Menu: "Nowhere", Title: "lost too", URL: "https://lost.example"},
		{Menu: "Home", Title: "GitHub", URL: "https://github.com"},
		{SubMenu: "Dev", Title: "Uiverse", URL: "https://uiverse.io"},
	}

	seeded, err := store.SeedMenusIfEmpty(menus, subMenus, cards)
	require.NoError(t, err)
	assert.True(t, seeded)

	var subs []models.SubMenu
	require.NoError(t, store.DB().Find(&subs).Error)
	require.Len(t, subs, 1)
	assert.Equal(t, "Dev", subs[0].Name)

	var home models.Menu
	require.NoError(t, store.DB().Where("name = ?", "Home").First(&home).Error)
	assert.Equal(t, []string{"GitHub"}, cardsOf(t, store, "menu_id", home.ID))
	assert.Equal(t, []string{"Uiverse"}, cardsOf(t, store, "sub_menu_id", subs[0].ID))
	assert.Equal(t, int64(2), countRows(t, store, &models.Card{}))
}

func TestSeedMenusIfEmpty_SubMenuNameFirstMatchWins(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.InitializeSchema())

	menus := []MenuSeed{{Name: "A", Order: 1}, {Name: "B", Order: 2}}
	subMenus := []SubMenuSeed{
		{ParentMenu: "B", Name: "shared", Order: 1},
		{ParentMenu: "A", Name: "shared", Order: 1},
	}
	cards := []CardSeed{{SubMenu: "shared", Title: "first", URL: "https://first.example"}}

	_, err := store.SeedMenusIfEmpty(menus, subMenus, cards)
	require.NoError(t, err)

	var b models.Menu
	require.NoError(t, store.DB().Where("name = ?", "B").First(&b).Error)
	var underB models.SubMenu
	require.NoError(t, store.DB().Where("parent_id = ?", b.ID).First(&underB).Error)

	// 按子菜单写入顺序匹配，而不是按父菜单的显示顺序
	assert.Equal(t, []string{"first"}, cardsOf(t, store, "sub_menu_id", underB.ID))
}

func TestSeedMenusIfEmpty_NonEmptyTableSkipped(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.InitializeSchema())
	require.NoError(t, store.DB().Create(&models.Menu{Name: "Existing", Order: 1}).Error)

	seeded, err := store.SeedMenusIfEmpty(DefaultMenus, DefaultSubMenus, DefaultCards)
	require.NoError(t, err)
	assert.False(t, seeded)
	assert.Equal(t, int64(1), countRows(t, store, &models.Menu{}))
	assert.Zero(t, countRows(t, store, &models.SubMenu{}))
	assert.Zero(t, countRows(t, store, &models.Card{}))
}

func TestBootstrap_CardsNotReseededWhenMenusExist(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Bootstrap(testAdmin))

	require.NoError(t, store.DB().Where("1 = 1").Delete(&models.Card{}).Error)
	require.NoError(t, store.Bootstrap(testAdmin))

	// 卡片只随菜单一起初始化
	assert.Zero(t, countRows(t, store, &models.Card{}))
}

func TestSeedMenusIfEmpty_DefaultTree(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.InitializeSchema())

	_, err := store.SeedMenusIfEmpty(DefaultMenus, DefaultSubMenus, DefaultCards)
	require.NoError(t, err)

	tree, err := store.MenuTree()
	require.NoError(t, err)
	require.Len(t, tree, 6)

	names := make([]string, 0, len(tree))
	for _, m := range tree {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"Home", "Cused", "Cloud", "Soft", "Tools", "Other"}, names)

	cused := tree[1]
	require.Len(t, cused.SubMenus, 3)
	assert.Equal(t, "forum", cused.SubMenus[0].Name)
	assert.Len(t, cused.SubMenus[0].Cards, 7)
	assert.Len(t, cused.SubMenus[1].Cards, 8)
	assert.Len(t, cused.SubMenus[2].Cards, 8)
	assert.Empty(t, cused.Cards)

	soft := tree[3]
	assert.Len(t, soft.SubMenus, 4)
	assert.Len(t, soft.Cards, 6)
}

func TestSeedAdminUserIfEmpty(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.InitializeSchema())

	_, err := store.SeedAdminUserIfEmpty("", "pw")
	assert.Error(t, err)

	seeded, err := store.SeedAdminUserIfEmpty("admin", "pw")
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = store.SeedAdminUserIfEmpty("admin2", "pw")
	require.NoError(t, err)
	assert.False(t, seeded)
	assert.Equal(t, int64(1), countRows(t, store, &models.User{}))
}

func TestSeedFriendsIfEmpty(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.InitializeSchema())

	seeded, err := store.SeedFriendsIfEmpty(DefaultFriends)
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = store.SeedFriendsIfEmpty(DefaultFriends)
	require.NoError(t, err)
	assert.False(t, seeded)

	friends, err := store.ListFriends()
	require.NoError(t, err)
	require.Len(t, friends, 2)
	assert.Equal(t, "Font Awesome", friends[1].Title)
}

func TestSeedMenusIfEmpty_CountError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	mock.ExpectQuery("select sqlite_version").
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow("3.45.1"))
	gormDB, err := gorm.Open(sqlite.New(sqlite.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// 统计失败时不写入任何数据
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `menus`").
		WillReturnError(errors.New("disk I/O error"))

	seeded, err := New(gormDB).SeedMenusIfEmpty(DefaultMenus, DefaultSubMenus, DefaultCards)
	assert.Error(t, err)
	assert.False(t, seeded)
	require.NoError(t, mock.ExpectationsWereMet())
}

// rejectNamed 为表添加触发器，拒绝写入指定名称的行，模拟单条插入失败
func rejectNamed(t *testing.T, store *Store, table, column, value string) {
	t.Helper()
	stmt := `CREATE TRIGGER reject_` + table + ` BEFORE INSERT ON ` + table +
		` WHEN NEW.` + column + ` = '` + value + `' BEGIN SELECT RAISE(ABORT, 'rejected'); END`
	require.NoError(t, store.DB().Exec(stmt).Error)
}

func TestSeedMenusIfEmpty_FailedRowsSkipped(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.InitializeSchema())
	rejectNamed(t, store, "menus", "name", "bad")
	rejectNamed(t, store, "sub_menus", "name", "bad")
	rejectNamed(t, store, "cards", "title", "bad")

	menus := []MenuSeed{{Name: "Home", Order: 1}, {Name: "bad", Order: 2}, {Name: "Tools", Order: 3}}
	subMenus := []SubMenuSeed{
		{ParentMenu: "Tools", Name: "bad", Order: 1},
		{ParentMenu: "Tools", Name: "Dev", Order: 2},
	}
	cards := []CardSeed{
		{Menu: "Home", Title: "first", URL: "https://first.example"},
		{Menu: "Home", Title: "bad", URL: "https://bad.example"},
		{SubMenu: "bad", Title: "orphan", URL: "https://orphan.example"},
		{SubMenu: "Dev", Title: "last", URL: "https://last.example"},
	}

	seeded, err := store.SeedMenusIfEmpty(menus, subMenus, cards)
	require.NoError(t, err)
	assert.True(t, seeded)

	tree, err := store.MenuTree()
	require.NoError(t, err)
	require.Len(t, tree, 2)
	assert.Equal(t, "Home", tree[0].Name)
	assert.Equal(t, "Tools", tree[1].Name)
	require.Len(t, tree[1].SubMenus, 1)
	assert.Equal(t, "Dev", tree[1].SubMenus[0].Name)

	assert.Equal(t, []string{"first"}, cardsOf(t, store, "menu_id", tree[0].ID))
	assert.Equal(t, []string{"last"}, cardsOf(t, store, "sub_menu_id", tree[1].SubMenus[0].ID))
	assert.Equal(t, int64(2), countRows(t, store, &models.Card{}))
}

func TestSeedFriendsIfEmpty_FailedRowsSkipped(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.InitializeSchema())
	rejectNamed(t, store, "friends", "title", "bad")

	seeded, err := store.SeedFriendsIfEmpty([]FriendSeed{
		{Title: "first", URL: "https://first.example"},
		{Title: "bad", URL: "https://bad.example"},
		{Title: "last", URL: "https://last.example"},
	})
	require.NoError(t, err)
	assert.True(t, seeded)

	friends, err := store.ListFriends()
	require.NoError(t, err)
	require.Len(t, friends, 2)
	assert.Equal(t, "first", friends[0].Title)
	assert.Equal(t, "last", friends[1].Title)
}
