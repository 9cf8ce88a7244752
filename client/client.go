package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
)

type Client struct {
	http.Client
	Addr string
}

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Article struct {
	ID        int64    `json:"id"`
	UserID    int64    `json:"user_id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"created_at"`
}

type apiError struct {
	Error string `json:"error"`
}

func (c *Client) Ping() (string, error) {
	req, err := http.NewRequest("GET", c.Addr+"/ping", nil)
	if err != nil {
		return "", err
	}

	resp, err := c.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), err
}

func (c *Client) CreateUser(name, email string) (*User, error) {
	user := &User{}
	err := c.post("/users", map[string]string{"name": name, "email": email}, user)

	return user, err
}

func (c *Client) GetUser(id int64) (*User, error) {
	user := &User{}
	err := c.get(fmt.Sprintf("/users/%d", id), user)

	return user, err
}

func (c *Client) DeleteUser(id int64) error {
	req, err := http.NewRequest("DELETE", fmt.Sprintf("%s/users/%d", c.Addr, id), nil)
	if err != nil {
		return err
	}

	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		return decodeError(resp)
	}

	return nil
}

// CreateArticle posts an article; tags is a comma-separated string,
// the way the service expects it.
func (c *Client) CreateArticle(userID int64, title, content, tags string) (*Article, error) {
	article := &Article{}
	err := c.post("/articles", map[string]interface{}{
		"user_id": userID,
		"title":   title,
		"content": content,
		"tags":    tags,
	}, article)

	return article, err
}

// ListArticles fetches articles, optionally filtered by tag and by a
// YYYY-MM-DD date_after. Empty strings skip the filters.
func (c *Client) ListArticles(tag, dateAfter string) ([]Article, error) {
	q := url.Values{}
	if tag != "" {
		q.Set("tag", tag)
	}
	if dateAfter != "" {
		q.Set("date_after", dateAfter)
	}

	path := "/articles"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	articles := []Article{}
	err := c.get(path, &articles)

	return articles, err
}

func (c *Client) get(path string, out interface{}) error {
	resp, err := c.Get(c.Addr + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) post(path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	resp, err := c.Post(c.Addr+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeError(resp *http.Response) error {
	apiErr := apiError{}
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return fmt.Errorf("%s (status %d)", apiErr.Error, resp.StatusCode)
}
