package domain

type SceneName string

const (
	SceneSplash   SceneName = "0 Splash"
	SceneMainMenu SceneName = "1 MainMenu"
	SceneHistory  SceneName = "2 History"
)

// Scenes lists every loadable scene: the fixed menu scenes followed by the
// catalog's pattern scenes.
func (c Catalog) Scenes() []SceneName {
	scenes := []SceneName{SceneSplash, SceneMainMenu, SceneHistory}
	for _, pattern := range c.Patterns {
		scenes = append(scenes, pattern.Scene)
	}

	return scenes
}
