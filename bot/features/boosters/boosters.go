package boosters

import (
	"sort"

	"nitroping/models"

	"github.com/bwmarrin/discordgo"
)

// CollectBoosters returns the boosting members, longest-boosting first
func CollectBoosters(members []*discordgo.Member) []models.Booster {
	boosters := make([]models.Booster, 0)
	for _, member := range members {
		if member == nil || member.PremiumSince == nil || member.User == nil {
			continue
		}
		boosters = append(boosters, models.Booster{
			UserID:      member.User.ID,
			DisplayName: member.DisplayName(),
			Since:       member.PremiumSince.UTC(),
		})
	}

	sort.SliceStable(boosters, func(a, b int) bool {
		if boosters[a].Since.Equal(boosters[b].Since) {
			return boosters[a].UserID < boosters[b].UserID
		}
		return boosters[a].Since.Before(boosters[b].Since)
	})
	return boosters
}

// Paginate splits boosters into pages of at most size entries
func Paginate(boosters []models.Booster, size int) [][]models.Booster {
	if size <= 0 {
		size = PageSize
	}
	pages := make([][]models.Booster, 0, (len(boosters)+size-1)/size)
	for start := 0; start < len(boosters); start += size {
		end := start + size
		if end > len(boosters) {
			end = len(boosters)
		}
		pages = append(pages, boosters[start:end])
	}
	return pages
}
