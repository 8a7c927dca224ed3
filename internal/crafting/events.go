package crafting

import (
	"github.com/osse101/craftboard/internal/domain"
	"github.com/osse101/craftboard/internal/event"
)

// NewItemUnlockedEvent creates the event published when a craft unlocks a product
func NewItemUnlockedEvent(itemID, recipeID string, timestamp int64) event.Event {
	return event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.ItemUnlocked,
		Payload: domain.ItemUnlockedPayload{
			ItemID:    itemID,
			RecipeID:  recipeID,
			Timestamp: timestamp,
		},
		Metadata: map[string]interface{}{
			domain.MetadataKeyItemID:   itemID,
			domain.MetadataKeyRecipeID: recipeID,
		},
	}
}

// NewRecipeUnlockedEvent creates the event published on a first craft
func NewRecipeUnlockedEvent(recipe domain.RecipeDefinition, timestamp int64) event.Event {
	return event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.RecipeUnlocked,
		Payload: domain.RecipeUnlockedPayload{
			RecipeID:  recipe.ID,
			Products:  recipe.Products,
			Timestamp: timestamp,
		},
		Metadata: map[string]interface{}{
			domain.MetadataKeyRecipeID: recipe.ID,
		},
	}
}

// NewRecipeAlreadyMadeEvent creates the event published when an unlocked recipe is combined again
func NewRecipeAlreadyMadeEvent(recipe domain.RecipeDefinition) event.Event {
	return event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.RecipeAlreadyMade,
		Payload: domain.RecipeAlreadyMadePayload{
			RecipeID: recipe.ID,
			Products: recipe.Products,
			Message:  domain.MsgAlreadyMade,
		},
		Metadata: map[string]interface{}{
			domain.MetadataKeyRecipeID: recipe.ID,
		},
	}
}

// NewCombinationInvalidEvent creates the event published when two items match no recipe
func NewCombinationInvalidEvent(first, second string) event.Event {
	return event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.CombinationInvalid,
		Payload: domain.CombinationInvalidPayload{
			First:  first,
			Second: second,
		},
	}
}

// NewHintGivenEvent creates the event published when a hint is applied to an item
func NewHintGivenEvent(itemID string) event.Event {
	return event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.HintGiven,
		Payload: domain.HintGivenPayload{ItemID: itemID},
		Metadata: map[string]interface{}{
			domain.MetadataKeyItemID: itemID,
		},
	}
}
