package anilist

// GraphQL documents sent to the AniList API. Field selections are kept
// to exactly what the snapshot builder and timeline consume.

const queryUserProfile = `
query UserProfile($userName: String) {
  User(name: $userName) {
    id
    name
    favourites {
      anime {
        nodes {
          id
        }
      }
    }
  }
}`

const queryAnimeList = `
query UserAnimeList($userName: String) {
  MediaListCollection(userName: $userName, type: ANIME) {
    lists {
      name
      status
      entries {
        id
        status
        score
        progress
        repeat
        startedAt {
          year
          month
          day
        }
        completedAt {
          year
          month
          day
        }
        media {
          id
          title {
            romaji
            english
          }
          format
          status
          episodes
          duration
          seasonYear
          startDate {
            year
            month
            day
          }
          genres
          countryOfOrigin
          studios {
            nodes {
              id
              name
            }
          }
        }
      }
    }
  }
}`

const queryActivityCount = `
query UserActivity($userId: Int, $perPage: Int) {
  Page(page: 1, perPage: $perPage) {
    pageInfo {
      total
    }
    activities(userId: $userId, sort: ID_DESC) {
      ... on ListActivity {
        id
      }
    }
  }
}`
