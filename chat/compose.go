package chat

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"tastefinder/models"
	"tastefinder/nearby"
)

// Chat ranking reaches farther than the nearby feed: a conversation is
// usually about the whole city, not the current block.
const chatMaxDistanceKm = 10

// Response is the composed answer to one diner message. A miss is still a
// normal response with an apologetic reply, never an error.
type Response struct {
	ID      string                    `json:"id"`
	Reply   string                    `json:"reply"`
	Intent  Intent                    `json:"intent"`
	Matches []models.NearbyRestaurant `json:"matches"`
}

// cannedReplies are conversational exchanges answered without touching
// the ranking engine. First substring hit wins.
var cannedReplies = []struct {
	Trigger string
	Reply   string
}{
	{"hello", "Hey! Tell me what you're in the mood for and I'll find you a table."},
	{"hey there", "Hey! Tell me what you're in the mood for and I'll find you a table."},
	{"thank", "You're welcome, enjoy your meal!"},
	{"goodbye", "See you next time. Eat well!"},
	{"bye", "See you next time. Eat well!"},
	{"help", "Ask me things like \"romantic Italian in Digbeth\" or \"plan my evening\" and I'll do the rest."},
}

// Composer turns parsed intents into ranked answers and templated reply
// text.
type Composer struct {
	Engine *nearby.Engine
}

// NewComposer returns a Composer backed by the given ranking engine.
func NewComposer(engine *nearby.Engine) *Composer {
	return &Composer{Engine: engine}
}

// Process answers one diner message against the candidate restaurant
// list. It checks the canned-reply dictionary first, then parses intent
// and either plans an itinerary or ranks a filtered candidate list.
func (c *Composer) Process(message string, restaurants []models.Restaurant, userLoc models.Coordinates, profile *models.TasteProfile) Response {
	resp := Response{ID: uuid.NewString(), Matches: []models.NearbyRestaurant{}}

	lower := strings.ToLower(message)
	for _, canned := range cannedReplies {
		if strings.Contains(lower, canned.Trigger) {
			resp.Reply = canned.Reply
			return resp
		}
	}

	intent := ParseIntent(message)
	resp.Intent = intent

	if intent.Type == IntentItinerary {
		return c.itinerary(resp, restaurants, userLoc, profile)
	}

	// Region labels may only exist after location resolution, so resolve
	// before filtering.
	candidates := filterCandidates(c.resolveAll(restaurants), intent)
	ranked := c.Engine.Rank(candidates, userLoc, profile, nearby.Options{
		TasteWeight:    nearby.DefaultTasteWeight,
		DistanceWeight: nearby.DefaultDistanceWeight,
		MaxDistanceKm:  chatMaxDistanceKm,
	})

	if len(ranked) == 0 {
		resp.Reply = "I couldn't find a spot matching that just now. Try a different area or cuisine and I'll keep looking."
		return resp
	}

	top := ranked[0]
	resp.Matches = ranked
	resp.Reply = fmt.Sprintf(
		"How about %s? It's a %d%% taste match for you, %s.",
		top.Restaurant.Name, top.TasteScore, top.DistanceText,
	)
	if len(ranked) > 1 {
		resp.Reply += fmt.Sprintf(" I've lined up %d more options below.", len(ranked)-1)
	}
	return resp
}

// itinerary composes the fixed four-step evening plan around the top
// ranked candidate.
func (c *Composer) itinerary(resp Response, restaurants []models.Restaurant, userLoc models.Coordinates, profile *models.TasteProfile) Response {
	ranked := c.Engine.Rank(restaurants, userLoc, profile, nearby.Options{
		TasteWeight:    nearby.DefaultTasteWeight,
		DistanceWeight: nearby.DefaultDistanceWeight,
		MaxDistanceKm:  chatMaxDistanceKm,
	})
	if len(ranked) == 0 {
		resp.Reply = "I couldn't put a plan together right now. I need at least one open spot near you to build around."
		return resp
	}

	top := ranked[0]
	resp.Matches = ranked
	resp.Reply = strings.Join([]string{
		"Here's your evening:",
		"6:00pm - drinks and small plates to warm up",
		fmt.Sprintf("7:30pm - dinner at %s (%s)", top.Restaurant.Name, top.DistanceText),
		"9:30pm - a slow walk and something sweet",
		"10:30pm - nightcap at a bar nearby",
	}, "\n")
	return resp
}

func (c *Composer) resolveAll(restaurants []models.Restaurant) []models.Restaurant {
	if c.Engine == nil || c.Engine.Resolver == nil {
		return restaurants
	}
	out := make([]models.Restaurant, len(restaurants))
	for i, r := range restaurants {
		out[i] = c.Engine.Resolver.Resolve(r)
	}
	return out
}

// filterCandidates narrows the list by the intent's region and cuisine
// hits using defensive case-insensitive substring matches. An intent with
// no hits leaves the list untouched.
func filterCandidates(restaurants []models.Restaurant, intent Intent) []models.Restaurant {
	out := make([]models.Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		if len(intent.Regions) > 0 && !containsAnyFold(r.Region, intent.Regions) {
			continue
		}
		if len(intent.Cuisines) > 0 && !containsAnyFold(r.CuisineLabel(), intent.Cuisines) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func containsAnyFold(s string, subs []string) bool {
	ls := strings.ToLower(s)
	for _, sub := range subs {
		if strings.Contains(ls, strings.ToLower(sub)) {
			return true
		}
	}
	return false
}
